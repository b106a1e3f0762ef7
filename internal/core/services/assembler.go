package services

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/custodia-labs/glotblocks-cli/internal/core/domain"
	"github.com/custodia-labs/glotblocks-cli/internal/logger"
)

// Assembler draws phonemes from slot pools to build raw phonemic words.
// It owns the source of randomness, so a fixed seed over fixed pools
// reproduces output exactly.
type Assembler struct {
	rng *rand.Rand
}

// NewAssembler creates an assembler around the given random source.
func NewAssembler(rng *rand.Rand) *Assembler {
	return &Assembler{rng: rng}
}

// Assemble builds one raw word from the template, shape by shape.
// Optional slot groups are included with probability one half. A slot
// whose combined pool is empty contributes nothing instead of aborting
// the word, so sparse configurations produce shorter words.
func (a *Assembler) Assemble(ps *domain.PoolSet, template domain.WordTemplate) string {
	var word strings.Builder

	for _, shape := range template {
		for _, group := range shape.Groups {
			if group.Optional && a.rng.Intn(2) == 1 {
				continue
			}
			for _, slot := range group.Slots {
				phoneme, ok := a.draw(ps.Merged(slot))
				if !ok {
					logger.Debug("slot %q has no pool entries, skipped", slot)
					continue
				}
				word.WriteString(phoneme)
			}
		}
	}

	return word.String()
}

// ChooseShape picks one shape string with probability proportional to
// its accumulated weight and parses it. All-zero weights fall back to a
// uniform choice. Returns domain.ErrNoShapes when nothing is available.
func (a *Assembler) ChooseShape(shapes map[string]float64) (domain.SyllableShape, error) {
	if len(shapes) == 0 {
		return domain.SyllableShape{}, domain.ErrNoShapes
	}

	names := make([]string, 0, len(shapes))
	for name := range shapes {
		names = append(names, name)
	}
	sort.Strings(names)

	var total float64
	for _, name := range names {
		if w := shapes[name]; w > 0 {
			total += w
		}
	}

	var chosen string
	if total <= 0 {
		chosen = names[a.rng.Intn(len(names))]
	} else {
		r := a.rng.Float64() * total
		chosen = names[len(names)-1]
		for _, name := range names {
			w := shapes[name]
			if w <= 0 {
				continue
			}
			if r < w {
				chosen = name
				break
			}
			r -= w
		}
	}

	shape, err := domain.ParseShape(chosen)
	if err != nil {
		return domain.SyllableShape{}, fmt.Errorf("shape %q: %w", chosen, err)
	}
	return shape, nil
}

// draw performs one weighted random choice from a pool. Candidates are
// visited in lexicographic order so a fixed seed gives a fixed pick.
// All-zero weights fall back to a uniform choice.
func (a *Assembler) draw(pool domain.Pool) (string, bool) {
	candidates := pool.Candidates()
	if len(candidates) == 0 {
		return "", false
	}

	total := pool.Total()
	if total <= 0 {
		return candidates[a.rng.Intn(len(candidates))], true
	}

	r := a.rng.Float64() * total
	for _, phoneme := range candidates {
		w := pool[phoneme]
		if w <= 0 {
			continue
		}
		if r < w {
			return phoneme, true
		}
		r -= w
	}

	// Floating-point drift can leave r a hair past the last bucket.
	return candidates[len(candidates)-1], true
}
