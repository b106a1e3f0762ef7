package services

import (
	"sync"

	"github.com/custodia-labs/glotblocks-cli/internal/core/domain"
	"github.com/custodia-labs/glotblocks-cli/internal/logger"
)

// PoolBuilder turns a weighted tag set into per-slot phoneme pools and
// accumulated word-shape weights. Pools are pure functions of
// context+config, so a builder is safe for concurrent use; it only
// mutates its own missing-tag counters, under a lock.
type PoolBuilder struct {
	cfg *domain.LanguageConfig

	mu      sync.Mutex
	missing map[string]int
}

// NewPoolBuilder creates a pool builder over a loaded configuration.
func NewPoolBuilder(cfg *domain.LanguageConfig) *PoolBuilder {
	return &PoolBuilder{
		cfg:     cfg,
		missing: make(map[string]int),
	}
}

// Build constructs the weighted pools for a generation context.
//
// For each concept in the context with a positive effective weight
// (base weight times caller scalar), every add_sounds entry either
// expands a known Definition into its slot's pool or lands as a literal
// phoneme; entries under the reserved "any" slot feed the shared
// fallback pool. Weights accumulate additively across concepts.
//
// A context tag absent from the ontology is counted and skipped, never
// fatal - partial and experimental tag sets still generate.
func (b *PoolBuilder) Build(tags domain.Context) *domain.PoolSet {
	ps := domain.NewPoolSet()

	for tag, scalar := range tags {
		concept, ok := b.cfg.Ontology[tag]
		if !ok {
			b.recordMissing(tag, scalar)
			continue
		}

		weight := concept.Weight * scalar
		if !(weight > 0) {
			continue
		}

		for slot, entries := range concept.AddSounds {
			if slot == "" {
				slot = domain.SlotAny
			}
			pool := ps.Slot(slot)
			for _, entry := range entries {
				if phonemes, known := b.cfg.Definition(entry); known {
					for _, phoneme := range phonemes {
						pool.Add(phoneme, weight)
					}
					continue
				}
				// Unresolved names are literal phonemes, not errors.
				pool.Add(entry, weight)
			}
		}

		for _, shape := range concept.AddShapes {
			ps.Shapes[shape] += weight
		}
	}

	// Safety net: shape-only tags (e.g. "noun") still need sounds to
	// draw from, so an empty pool set falls back to the generic C/V
	// classes when the configuration defines them.
	if ps.Empty() {
		b.seedDefaults(ps)
	}

	return ps
}

// seedDefaults loads the generic "C" and "V" definitions at unit weight.
func (b *PoolBuilder) seedDefaults(ps *domain.PoolSet) {
	for _, class := range []string{"C", "V"} {
		phonemes, ok := b.cfg.Definition(class)
		if !ok {
			continue
		}
		pool := ps.Slot(class)
		for _, phoneme := range phonemes {
			pool.Add(phoneme, 1.0)
		}
	}
	if !ps.Empty() {
		logger.Info("no concept sounds for context, seeded default C/V pools")
	}
}

// recordMissing counts a context tag that the ontology does not know.
func (b *PoolBuilder) recordMissing(tag string, scalar float64) {
	b.mu.Lock()
	b.missing[tag]++
	count := b.missing[tag]
	b.mu.Unlock()

	if scalar > 0 {
		logger.Warn("unknown concept %q in context, ignored (seen %d times)", tag, count)
	}
}

// MissingConcepts returns a copy of the unknown-tag counters, for
// diagnostic reporting.
func (b *PoolBuilder) MissingConcepts() map[string]int {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make(map[string]int, len(b.missing))
	for tag, count := range b.missing {
		out[tag] = count
	}
	return out
}
