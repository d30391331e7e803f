// Package assembler turns a config.Configuration into the source of a host
// screen embedding a web-rendering surface.
//
// Each Target ships a skeleton template whose optional blocks are delimited by
// `{# region name #}` and `{# endregion #}` marker lines. The skeleton is
// parsed once into an ordered list of fixed-text and region nodes; rendering
// keeps the regions whose predicate holds for the configuration, then fills
// scalar placeholders with values escaped for their embedding context
// (JavaString, SwiftString, PackageName, ResourceName, AssetURLPath). Omitted
// regions leave no residue, so every combination of toggles yields one
// well-formed unit.
//
// Rendering is pure and deterministic: an Assembler holds no mutable state
// after construction and may be shared across goroutines.
package assembler
