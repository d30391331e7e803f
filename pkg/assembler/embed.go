package assembler

import (
	"embed"
	"io/fs"
)

//go:embed templates/android/*.tmpl templates/ios/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded skeletons so callers can inspect or extend
// them.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
