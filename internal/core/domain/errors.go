package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent generation and configuration failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfig indicates a structurally invalid language configuration:
	// a required section is missing or a field has the wrong shape.
	// Fatal to the load step, never silently defaulted.
	ErrInvalidConfig = errors.New("invalid language configuration")

	// ErrExhausted indicates the retry budget was spent without producing a
	// constraint-passing word. Surfaced per requested word; a multi-word
	// batch continues past it.
	ErrExhausted = errors.New("generation exhausted")

	// ErrNoShapes indicates that neither the request nor the active concepts
	// provided any syllable shapes, so no word structure can be drawn.
	ErrNoShapes = errors.New("no syllable shapes available")
)

// ConfigError describes where a language configuration is invalid.
// It wraps ErrInvalidConfig so callers can match with errors.Is.
type ConfigError struct {
	// Section is the top-level section at fault (e.g. "ontology").
	Section string

	// Field is the offending entry within the section, if any.
	Field string

	// Reason is a human-readable description of the problem.
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config section %q, field %q: %s", e.Section, e.Field, e.Reason)
	}
	return fmt.Sprintf("config section %q: %s", e.Section, e.Reason)
}

// Unwrap ties every ConfigError to ErrInvalidConfig.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
