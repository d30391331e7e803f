package webshell

import (
	"io/fs"

	"github.com/goliatone/go-webshell/pkg/assembler"
)

// EmbeddedTemplates exposes the built-in target skeletons so callers can
// reuse or extend them without importing the assembler package directly.
func EmbeddedTemplates() fs.FS {
	return assembler.TemplatesFS()
}
