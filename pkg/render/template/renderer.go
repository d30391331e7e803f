package template

import (
	"io"
)

// TemplateRenderer is the seam the assembler relies on for scalar
// substitution. Includes inside templateContent resolve against the
// renderer's template root. Implementations must be safe for concurrent use.
type TemplateRenderer interface {
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}
