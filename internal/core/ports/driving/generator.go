package driving

import (
	"context"

	"github.com/custodia-labs/glotblocks-cli/internal/core/domain"
)

// GeneratorService produces invented-language words whose sounds are
// biased toward the concepts in a generation context.
type GeneratorService interface {
	// Generate produces up to req.Count words. Batch generation is
	// best-effort per word: an exhausted retry budget is reported in
	// the result's Failures, not as an error.
	Generate(ctx context.Context, req domain.GenerateRequest) (*domain.GenerateResult, error)

	// Suffix generates a grammatical suffix for a morphology grammar
	// type (e.g. "plural"), anchored on the concept the morphology
	// section names.
	Suffix(ctx context.Context, grammarType string) (string, error)

	// BuildPools exposes the weighted per-slot pools for a context, for
	// diagnostic and preview consumers.
	BuildPools(tags domain.Context) *domain.PoolSet

	// Validate re-checks the structural invariants of the active
	// configuration.
	Validate() error
}
