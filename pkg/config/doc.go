// Package config defines the Configuration record consumed by the assembler
// together with its invariants. A Configuration is built once per generation
// request, never mutated, and discarded after rendering. Validate reports every
// violated invariant as a field-level Error so callers can surface messages to
// whoever authored the settings.
package config
