package assembler

import (
	"fmt"

	"github.com/goliatone/go-webshell/pkg/config"
)

// Predicate decides whether a region is emitted for a configuration.
type Predicate func(cfg config.Configuration) bool

// Target describes one generated artifact: its skeleton, the predicate for
// every region the skeleton declares, and how scalars are bound.
type Target struct {
	// Name identifies the target inside a Registry.
	Name string

	// Skeleton is the template path inside the templates filesystem.
	Skeleton string

	// Predicates maps each skeleton region to its activation predicate.
	Predicates map[string]Predicate

	// Bind returns the escaped scalar values referenced by the skeleton.
	Bind func(cfg config.Configuration) (map[string]any, error)

	// OutputPath returns the project-relative path of the generated file.
	OutputPath func(cfg config.Configuration) (string, error)
}

// GeneratedSource is the text blob handed to the packaging pipeline.
type GeneratedSource struct {
	Target  string
	Path    string
	Content string
}

func boolLiteral(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

func remoteWithHeaders(cfg config.Configuration) bool {
	return cfg.IsRemote() && cfg.RequestHeaders().Len() > 0
}

func remoteWithoutHeaders(cfg config.Configuration) bool {
	return cfg.IsRemote() && cfg.RequestHeaders().Len() == 0
}

func bindHeaders(cfg config.Configuration, quote func(field, s string) (string, error)) ([]map[string]any, error) {
	headers := cfg.RequestHeaders()
	if headers.Len() == 0 {
		return nil, nil
	}
	out := make([]map[string]any, 0, headers.Len())
	for i, header := range headers {
		key, err := quote(headerField(i, "key"), header.Key)
		if err != nil {
			return nil, err
		}
		value, err := quote(headerField(i, "value"), header.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, map[string]any{"key": key, "value": value})
	}
	return out, nil
}

func headerField(index int, part string) string {
	return fmt.Sprintf("headers[%d].%s", index, part)
}
