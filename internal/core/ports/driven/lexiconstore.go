package driven

import (
	"context"

	"github.com/custodia-labs/glotblocks-cli/internal/core/domain"
)

// LexiconStore persists generated words.
// Backed by SQLite for durable storage; an in-memory implementation
// exists for tests and one-shot runs.
type LexiconStore interface {
	// Save stores a generated word.
	Save(ctx context.Context, word domain.GeneratedWord) error

	// Get retrieves a word by its spelled form.
	// Returns domain.ErrNotFound when absent.
	Get(ctx context.Context, spelled string) (*domain.GeneratedWord, error)

	// List returns all stored words.
	List(ctx context.Context) ([]domain.GeneratedWord, error)

	// Delete removes a word by its spelled form.
	Delete(ctx context.Context, spelled string) error

	// Clear removes every stored word.
	Clear(ctx context.Context) error
}
