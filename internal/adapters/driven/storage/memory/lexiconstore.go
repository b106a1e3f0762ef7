// Package memory provides in-memory implementations of the driven
// storage ports, for tests and one-shot CLI runs.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/glotblocks-cli/internal/core/domain"
	"github.com/custodia-labs/glotblocks-cli/internal/core/ports/driven"
)

// Ensure LexiconStore implements the interface.
var _ driven.LexiconStore = (*LexiconStore)(nil)

// LexiconStore is an in-memory implementation of driven.LexiconStore.
type LexiconStore struct {
	mu    sync.RWMutex
	words map[string]domain.GeneratedWord
}

// NewLexiconStore creates a new in-memory lexicon store.
func NewLexiconStore() *LexiconStore {
	return &LexiconStore{
		words: make(map[string]domain.GeneratedWord),
	}
}

// Save stores a generated word, keyed by its spelled form.
func (s *LexiconStore) Save(_ context.Context, word domain.GeneratedWord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.words[word.Spelled] = word
	return nil
}

// Get retrieves a word by its spelled form.
func (s *LexiconStore) Get(_ context.Context, spelled string) (*domain.GeneratedWord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	word, ok := s.words[spelled]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &word, nil
}

// List returns all stored words ordered by spelled form.
func (s *LexiconStore) List(_ context.Context) ([]domain.GeneratedWord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	words := make([]domain.GeneratedWord, 0, len(s.words))
	for _, word := range s.words {
		words = append(words, word)
	}
	sort.Slice(words, func(i, j int) bool {
		return words[i].Spelled < words[j].Spelled
	})
	return words, nil
}

// Delete removes a word by its spelled form. Deleting an absent word
// is not an error.
func (s *LexiconStore) Delete(_ context.Context, spelled string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.words, spelled)
	return nil
}

// Clear removes every stored word.
func (s *LexiconStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = make(map[string]domain.GeneratedWord)
	return nil
}
