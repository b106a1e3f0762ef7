package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/glotblocks-cli/internal/core/domain"
	"github.com/custodia-labs/glotblocks-cli/internal/core/ports/driven"
	"github.com/custodia-labs/glotblocks-cli/internal/core/ports/driving"
	"github.com/custodia-labs/glotblocks-cli/internal/logger"
)

// Ensure Generator implements the interface.
var _ driving.GeneratorService = (*Generator)(nil)

// DefaultMaxAttempts is the retry budget per requested word when
// neither the generator option nor the request overrides it.
const DefaultMaxAttempts = 100

// Generator is the engine facade: it builds pools for a context,
// assembles candidate words, filters them against the constraints with
// a bounded retry budget, and renders accepted words to their spelled
// form.
type Generator struct {
	cfg         *domain.LanguageConfig
	pools       *PoolBuilder
	assembler   *Assembler
	filter      *Filter
	renderer    *Renderer
	rng         *rand.Rand
	maxAttempts int
	lexicon     driven.LexiconStore
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed fixes the random source so generation is reproducible.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // reproducibility, not crypto
	}
}

// WithRand supplies a random source directly.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = rng
	}
}

// WithMaxAttempts sets the per-word retry budget.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithLexicon wires a lexicon store, enabling uniqueness checks and
// saving of accepted words.
func WithLexicon(store driven.LexiconStore) Option {
	return func(g *Generator) {
		g.lexicon = store
	}
}

// NewGenerator validates the configuration and builds the pipeline.
func NewGenerator(cfg *domain.LanguageConfig, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new generator: %w", err)
	}

	g := &Generator{
		cfg:         cfg,
		pools:       NewPoolBuilder(cfg),
		filter:      NewFilter(cfg.Constraints),
		renderer:    NewRenderer(cfg.Orthography),
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // not crypto
	}
	g.assembler = NewAssembler(g.rng)

	return g, nil
}

// Generate produces up to req.Count words for the request's context.
// Pools are built once per batch; each word then assembles, filters,
// and renders independently. A word whose retry budget runs out lands
// in the result's Failures and the batch continues.
func (g *Generator) Generate(ctx context.Context, req domain.GenerateRequest) (*domain.GenerateResult, error) {
	count := req.Count
	if count <= 0 {
		count = 1
	}
	attempts := req.Attempts
	if attempts <= 0 {
		attempts = g.maxAttempts
	}

	logger.Section("Pool Construction")
	pools := g.pools.Build(req.Context)
	logger.Debug("built %d slot pools, %d shape templates", len(pools.Slots), len(pools.Shapes))

	var override domain.WordTemplate
	if len(req.Template) > 0 {
		var err error
		override, err = domain.ParseTemplate(req.Template)
		if err != nil {
			return nil, fmt.Errorf("template override: %w", err)
		}
	}

	if override == nil && len(pools.Shapes) == 0 {
		return nil, fmt.Errorf("context %v provides no word shapes: %w", tagNames(req.Context), domain.ErrNoShapes)
	}

	logger.Section("Word Generation")
	result := &domain.GenerateResult{}
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		word, failure := g.generateOne(ctx, pools, override, req, attempts)
		if failure != nil {
			logger.Warn("word %d/%d exhausted %d attempts", i+1, count, attempts)
			result.Failures = append(result.Failures, *failure)
			continue
		}

		if req.Save && g.lexicon != nil {
			if err := g.lexicon.Save(ctx, *word); err != nil {
				return result, fmt.Errorf("save word %q: %w", word.Spelled, err)
			}
		}
		result.Words = append(result.Words, *word)
	}

	return result, nil
}

// generateOne runs the assemble-filter-render loop for a single word.
func (g *Generator) generateOne(
	ctx context.Context,
	pools *domain.PoolSet,
	override domain.WordTemplate,
	req domain.GenerateRequest,
	attempts int,
) (*domain.GeneratedWord, *domain.GenerateFailure) {
	var rejections []domain.Rejection

	for attempt := 1; attempt <= attempts; attempt++ {
		template := override
		if template == nil {
			shape, err := g.assembler.ChooseShape(pools.Shapes)
			if err != nil {
				logger.Warn("shape selection failed: %v", err)
				continue
			}
			template = domain.WordTemplate{shape}
		}

		raw := g.assembler.Assemble(pools, template)
		if raw == "" {
			continue
		}

		ok, violated := g.filter.Check(raw)
		if !ok {
			logger.Debug("rejected %q: constraint %q", raw, violated)
			rejections = append(rejections, domain.Rejection{Word: raw, Constraint: violated})
			continue
		}

		spelled := g.renderer.Render(raw)

		if req.Unique && g.lexicon != nil {
			taken, extended := g.extendIfTaken(ctx, pools, raw, spelled)
			if taken {
				rejections = append(rejections, domain.Rejection{Word: spelled, Constraint: "duplicate"})
				continue
			}
			raw, spelled = extended.raw, extended.spelled
		}

		return &domain.GeneratedWord{
			ID:         uuid.NewString(),
			Raw:        raw,
			Spelled:    spelled,
			Context:    req.Context.Clone(),
			Attempts:   attempt,
			Rejections: rejections,
			CreatedAt:  time.Now().UTC(),
		}, nil
	}

	return nil, &domain.GenerateFailure{Attempts: attempts, Rejections: rejections}
}

// candidate carries a raw/spelled pair through the uniqueness check.
type candidate struct {
	raw     string
	spelled string
}

// extendIfTaken checks the lexicon for a collision. A taken word gets
// one extra drawn syllable; the extended form must still pass the
// constraints and be free, otherwise the attempt is discarded.
func (g *Generator) extendIfTaken(
	ctx context.Context,
	pools *domain.PoolSet,
	raw, spelled string,
) (bool, candidate) {
	if _, err := g.lexicon.Get(ctx, spelled); err != nil {
		// Not found means the word is free.
		return false, candidate{raw: raw, spelled: spelled}
	}

	logger.Debug("%q already in lexicon, extending", spelled)

	extra, err := g.assembler.ChooseShape(pools.Shapes)
	if err != nil {
		return true, candidate{}
	}

	extended := raw + g.assembler.Assemble(pools, domain.WordTemplate{extra})
	if extended == raw {
		return true, candidate{}
	}
	if ok, _ := g.filter.Check(extended); !ok {
		return true, candidate{}
	}

	respelled := g.renderer.Render(extended)
	if _, err := g.lexicon.Get(ctx, respelled); err == nil {
		return true, candidate{}
	}

	return false, candidate{raw: extended, spelled: respelled}
}

// Suffix generates a grammatical suffix for a morphology grammar type,
// using the anchor concept's sounds drawn into the morpheme's shape.
func (g *Generator) Suffix(ctx context.Context, grammarType string) (string, error) {
	morph, ok := g.cfg.Morphology[grammarType]
	if !ok {
		return "", fmt.Errorf("morphology %q: %w", grammarType, domain.ErrNotFound)
	}

	shapeStr := morph.Shape
	if shapeStr == "" {
		shapeStr = "V"
	}
	shape, err := domain.ParseShape(shapeStr)
	if err != nil {
		return "", fmt.Errorf("morphology %q: %w", grammarType, err)
	}

	tags := domain.Context{}
	if morph.Anchor != "" {
		tags[morph.Anchor] = 1.0
	}
	pools := g.pools.Build(tags)

	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		raw := g.assembler.Assemble(pools, domain.WordTemplate{shape})
		if raw == "" {
			continue
		}
		if ok, _ := g.filter.Check(raw); !ok {
			continue
		}
		return g.renderer.Render(raw), nil
	}

	return "", fmt.Errorf("morphology %q after %d attempts: %w", grammarType, g.maxAttempts, domain.ErrExhausted)
}

// BuildPools exposes the pool builder for diagnostic consumers such as
// the preview command.
func (g *Generator) BuildPools(tags domain.Context) *domain.PoolSet {
	return g.pools.Build(tags)
}

// Validate re-checks the active configuration's structural invariants.
func (g *Generator) Validate() error {
	return g.cfg.Validate()
}

// MissingConcepts reports how often unknown tags were seen, for the
// missing-tag report.
func (g *Generator) MissingConcepts() map[string]int {
	return g.pools.MissingConcepts()
}

// tagNames lists a context's tags for error messages.
func tagNames(tags domain.Context) []string {
	names := make([]string, 0, len(tags))
	for tag := range tags {
		names = append(names, tag)
	}
	return names
}
