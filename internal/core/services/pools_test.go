package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/glotblocks-cli/internal/core/domain"
)

func poolConfig() *domain.LanguageConfig {
	return &domain.LanguageConfig{
		Definitions: map[string][]string{
			"C":       {"p", "t", "k"},
			"V":       {"a", "i"},
			"Liquids": {"l", "r"},
		},
		Ontology: map[string]domain.Concept{
			"fire": {
				Weight: 1.0,
				AddSounds: map[string][]string{
					"C": {"k", "t"},
					"V": {"a"},
				},
				AddShapes: []string{"CVC"},
			},
			"water": {
				Weight: 2.0,
				AddSounds: map[string][]string{
					"C":   {"Liquids"},
					"any": {"w"},
				},
				AddShapes: []string{"CV", "CVC"},
			},
			"void": {
				Weight:    0.0,
				AddSounds: map[string][]string{"C": {"x"}},
			},
		},
		Constraints: []domain.Constraint{},
		Orthography: []domain.OrthographyRule{},
	}
}

func TestPoolBuilder_LiteralsAndDefinitions(t *testing.T) {
	b := NewPoolBuilder(poolConfig())

	ps := b.Build(domain.Context{"fire": 1.0, "water": 1.0})

	// Literals from fire land in their declared slots.
	assert.InDelta(t, 1.0, ps.Slots["C"]["k"], 1e-9)
	assert.InDelta(t, 1.0, ps.Slots["C"]["t"], 1e-9)
	assert.InDelta(t, 1.0, ps.Slots["V"]["a"], 1e-9)

	// "Liquids" expands into the C slot at water's weight.
	assert.InDelta(t, 2.0, ps.Slots["C"]["l"], 1e-9)
	assert.InDelta(t, 2.0, ps.Slots["C"]["r"], 1e-9)

	// "w" was added under the reserved slot and feeds the fallback pool.
	assert.InDelta(t, 2.0, ps.Slots[domain.SlotAny]["w"], 1e-9)

	// The fallback is unioned into every slot at draw time.
	merged := ps.Merged("V")
	assert.InDelta(t, 2.0, merged["w"], 1e-9)
}

func TestPoolBuilder_WeightsAccumulateAcrossConcepts(t *testing.T) {
	cfg := poolConfig()
	cfg.Ontology["ember"] = domain.Concept{
		Weight:    1.0,
		AddSounds: map[string][]string{"C": {"k"}},
	}
	b := NewPoolBuilder(cfg)

	ps := b.Build(domain.Context{"fire": 1.0, "ember": 1.0})

	// "k" favoured by two concepts accumulates both weights.
	assert.InDelta(t, 2.0, ps.Slots["C"]["k"], 1e-9)
}

func TestPoolBuilder_ScalarMultipliesBaseWeight(t *testing.T) {
	b := NewPoolBuilder(poolConfig())

	ps := b.Build(domain.Context{"water": 3.0})

	// water's base weight 2.0 times the caller scalar 3.0.
	assert.InDelta(t, 6.0, ps.Slots["C"]["l"], 1e-9)
}

func TestPoolBuilder_ZeroWeightContributesNothing(t *testing.T) {
	b := NewPoolBuilder(poolConfig())

	ps := b.Build(domain.Context{"fire": 1.0, "void": 1.0})
	assert.NotContains(t, ps.Slots["C"], "x")

	ps = b.Build(domain.Context{"fire": 0.0})
	assert.NotContains(t, ps.Slots["C"], "k")
}

func TestPoolBuilder_UnknownConceptTolerance(t *testing.T) {
	b := NewPoolBuilder(poolConfig())

	with := b.Build(domain.Context{"fire": 1.0, "plasma": 1.0})
	without := b.Build(domain.Context{"fire": 1.0})

	// A nonexistent tag must leave the pools identical.
	assert.Equal(t, without.Slots, with.Slots)
	assert.Equal(t, without.Shapes, with.Shapes)

	missing := b.MissingConcepts()
	assert.Equal(t, 1, missing["plasma"])
}

func TestPoolBuilder_ShapesAccumulate(t *testing.T) {
	b := NewPoolBuilder(poolConfig())

	ps := b.Build(domain.Context{"fire": 1.0, "water": 1.0})

	assert.InDelta(t, 3.0, ps.Shapes["CVC"], 1e-9) // fire 1.0 + water 2.0
	assert.InDelta(t, 2.0, ps.Shapes["CV"], 1e-9)
}

func TestPoolBuilder_DefaultSeedWhenNoSounds(t *testing.T) {
	cfg := poolConfig()
	cfg.Ontology["noun"] = domain.Concept{Weight: 1.0, AddShapes: []string{"CVC"}}
	b := NewPoolBuilder(cfg)

	ps := b.Build(domain.Context{"noun": 1.0})

	// Shape-only tags fall back to the generic C/V classes.
	require.False(t, ps.Empty())
	assert.InDelta(t, 1.0, ps.Slots["C"]["p"], 1e-9)
	assert.InDelta(t, 1.0, ps.Slots["V"]["a"], 1e-9)
	assert.InDelta(t, 1.0, ps.Shapes["CVC"], 1e-9)
}

func TestPoolBuilder_EmptyContext(t *testing.T) {
	b := NewPoolBuilder(poolConfig())

	ps := b.Build(domain.Context{})

	// The safety net still provides something to draw from.
	assert.False(t, ps.Empty())
	assert.Empty(t, ps.Shapes)
}
