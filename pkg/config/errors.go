package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies configuration failures.
type ErrorKind string

const (
	// KindInvalidConfiguration marks a violated Configuration invariant.
	KindInvalidConfiguration ErrorKind = "InvalidConfiguration"
	// KindUnsafeLiteral marks a scalar that cannot be embedded safely into the
	// generated source.
	KindUnsafeLiteral ErrorKind = "UnsafeLiteralValue"
)

var (
	// ErrInvalidConfiguration matches every Error of kind InvalidConfiguration.
	ErrInvalidConfiguration = errors.New("config: invalid configuration")
	// ErrUnsafeLiteral matches every Error of kind UnsafeLiteralValue.
	ErrUnsafeLiteral = errors.New("config: unsafe literal value")
)

// Error reports a failure attributed to a single Configuration field.
type Error struct {
	Kind    ErrorKind
	Field   string
	Message string
}

// Invalid builds an InvalidConfiguration error for field.
func Invalid(field, format string, args ...any) *Error {
	return &Error{Kind: KindInvalidConfiguration, Field: field, Message: fmt.Sprintf(format, args...)}
}

// Unsafe builds an UnsafeLiteralValue error for field.
func Unsafe(field, format string, args ...any) *Error {
	return &Error{Kind: KindUnsafeLiteral, Field: field, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
}

// Is lets errors.Is match the kind sentinels.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case ErrInvalidConfiguration:
		return e.Kind == KindInvalidConfiguration
	case ErrUnsafeLiteral:
		return e.Kind == KindUnsafeLiteral
	}
	return false
}

// Errors aggregates field errors in the order they were detected.
type Errors []*Error

func (e Errors) Error() string {
	switch len(e) {
	case 0:
		return "config: no errors"
	case 1:
		return e[0].Error()
	}
	parts := make([]string, 0, len(e))
	for _, err := range e {
		parts = append(parts, err.Error())
	}
	return fmt.Sprintf("config: %d errors: %s", len(e), strings.Join(parts, "; "))
}

// Unwrap exposes individual field errors to errors.Is and errors.As.
func (e Errors) Unwrap() []error {
	out := make([]error, 0, len(e))
	for _, err := range e {
		out = append(out, err)
	}
	return out
}

// Fields lists the offending field paths.
func (e Errors) Fields() []string {
	out := make([]string, 0, len(e))
	for _, err := range e {
		out = append(out, err.Field)
	}
	return out
}

// ErrOrNil returns nil for an empty aggregate so callers can return it directly.
func (e Errors) ErrOrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// FieldOf extracts the field path of the first field error wrapped by err.
func FieldOf(err error) string {
	var fieldErr *Error
	if errors.As(err, &fieldErr) {
		return fieldErr.Field
	}
	return ""
}
