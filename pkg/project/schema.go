package project

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-webshell/pkg/config"
)

//go:embed schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *openapi3.Schema
	schemaErr  error
)

func projectSchema() (*openapi3.Schema, error) {
	schemaOnce.Do(func() {
		var s openapi3.Schema
		if err := json.Unmarshal(schemaJSON, &s); err != nil {
			schemaErr = fmt.Errorf("project: load schema: %w", err)
			return
		}
		schema = &s
	})
	return schema, schemaErr
}

// validateShape checks a decoded document against the project schema. Values
// are normalised through JSON so numbers and maps match what the schema
// validator expects.
func validateShape(raw any) error {
	s, err := projectSchema()
	if err != nil {
		return err
	}

	encoded, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("project: normalise document: %w", err)
	}
	var value any
	if err := json.Unmarshal(encoded, &value); err != nil {
		return fmt.Errorf("project: normalise document: %w", err)
	}

	if err := s.VisitJSON(value, openapi3.MultiErrors()); err != nil {
		return schemaErrors(err)
	}
	return nil
}

func schemaErrors(err error) error {
	var out config.Errors
	var collect func(error)
	collect = func(err error) {
		var multi openapi3.MultiError
		if errors.As(err, &multi) {
			for _, inner := range multi {
				collect(inner)
			}
			return
		}
		var schemaErr *openapi3.SchemaError
		if errors.As(err, &schemaErr) {
			field := strings.Join(schemaErr.JSONPointer(), ".")
			if field == "" {
				field = "project"
			}
			out = append(out, config.Invalid(field, "%s", schemaErr.Reason))
			return
		}
		out = append(out, config.Invalid("project", "%v", err))
	}
	collect(err)
	return out.ErrOrNil()
}
