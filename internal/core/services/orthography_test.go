package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/glotblocks-cli/internal/core/domain"
)

func TestRenderer_SingleRule(t *testing.T) {
	r := NewRenderer([]domain.OrthographyRule{
		{Key: "1", Pattern: "k", Replacement: "kh"},
	})

	assert.Equal(t, "kh", r.Render("k"))
	assert.Equal(t, "t", r.Render("t"))
	assert.Equal(t, "a", r.Render("a"))
}

func TestRenderer_ChainedSequentialRewrite(t *testing.T) {
	// Rule 2 must see rule 1's output: k -> kh, then h -> j turns the
	// freshly produced "kh" into "kj".
	r := NewRenderer([]domain.OrthographyRule{
		{Key: "1", Pattern: "k", Replacement: "kh"},
		{Key: "2", Pattern: "h", Replacement: "j"},
	})

	assert.Equal(t, "kj", r.Render("k"))
}

func TestRenderer_AscendingNumericKeyOrder(t *testing.T) {
	// Declared out of order; "2" must apply before "10".
	r := NewRenderer([]domain.OrthographyRule{
		{Key: "10", Pattern: "b", Replacement: "c"},
		{Key: "2", Pattern: "a", Replacement: "b"},
	})

	assert.Equal(t, "c", r.Render("a"))
}

func TestRenderer_RegexPattern(t *testing.T) {
	r := NewRenderer([]domain.OrthographyRule{
		{Key: "1", Pattern: "a+", Replacement: "aa"},
	})

	assert.Equal(t, "kaat", r.Render("kaaaat"))
}

func TestRenderer_InvalidRegexAppliedLiterally(t *testing.T) {
	r := NewRenderer([]domain.OrthographyRule{
		{Key: "1", Pattern: "(", Replacement: "-"},
	})

	assert.Equal(t, "a-b", r.Render("a(b"))
}

func TestRenderer_NoMatchLeavesWordUnchanged(t *testing.T) {
	r := NewRenderer([]domain.OrthographyRule{
		{Key: "1", Pattern: "zz", Replacement: "z"},
	})

	assert.Equal(t, "kata", r.Render("kata"))
}

func TestRenderer_Deterministic(t *testing.T) {
	rules := []domain.OrthographyRule{
		{Key: "2", Pattern: "t", Replacement: "th"},
		{Key: "1", Pattern: "k", Replacement: "kh"},
	}

	a := NewRenderer(rules)
	b := NewRenderer(rules)

	assert.Equal(t, a.Render("katak"), b.Render("katak"))
	assert.Equal(t, a.Render("katak"), a.Render("katak"))
}

func TestRenderer_DoesNotMutateInput(t *testing.T) {
	rules := []domain.OrthographyRule{
		{Key: "2", Pattern: "b", Replacement: "c"},
		{Key: "1", Pattern: "a", Replacement: "b"},
	}

	NewRenderer(rules)

	assert.Equal(t, "2", rules[0].Key)
	assert.Equal(t, "1", rules[1].Key)
}

func TestRenderer_EmptyRules(t *testing.T) {
	r := NewRenderer(nil)
	assert.Equal(t, "kata", r.Render("kata"))
}
