package driven

import "github.com/custodia-labs/glotblocks-cli/internal/core/domain"

// ConfigSource loads a language configuration from wherever it lives.
// The core consumes the parsed model once, ahead of generation; the
// document format belongs to the adapter.
type ConfigSource interface {
	// Load parses and validates the language configuration.
	// Structural problems surface as errors wrapping domain.ErrInvalidConfig.
	Load() (*domain.LanguageConfig, error)

	// Path returns a human-readable origin for diagnostics.
	Path() string
}
