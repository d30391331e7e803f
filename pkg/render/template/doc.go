// Package template defines the renderer-agnostic template interface used by
// the assembler. The pongo2-backed implementation lives in the gotemplate
// subpackage.
package template
