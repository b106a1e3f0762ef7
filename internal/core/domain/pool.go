package domain

import "sort"

// Pool is a weighted multiset of phonemes eligible for one slot.
// Weights accumulate additively across concepts and repeated entries,
// so a phoneme favoured by two active concepts is proportionally more
// likely than one favoured by one.
type Pool map[string]float64

// Add accumulates weight for a phoneme.
func (p Pool) Add(phoneme string, weight float64) {
	p[phoneme] += weight
}

// Candidates returns the pool's phonemes in lexicographic order.
// The stable order makes weighted draws reproducible under a fixed seed.
func (p Pool) Candidates() []string {
	out := make([]string, 0, len(p))
	for phoneme := range p {
		out = append(out, phoneme)
	}
	sort.Strings(out)
	return out
}

// Total returns the summed weight of the pool.
func (p Pool) Total() float64 {
	var total float64
	for _, w := range p {
		total += w
	}
	return total
}

// PoolSet is the Pool Builder's output for one generation context:
// per-slot phoneme pools plus accumulated word-shape weights.
type PoolSet struct {
	// Slots maps slot name to its pool. The SlotAny pool is stored here
	// under its reserved name and combined on demand via Merged.
	Slots map[string]Pool

	// Shapes maps compact shape strings to their accumulated weight.
	Shapes map[string]float64
}

// NewPoolSet returns an empty pool set.
func NewPoolSet() *PoolSet {
	return &PoolSet{
		Slots:  make(map[string]Pool),
		Shapes: make(map[string]float64),
	}
}

// Slot returns the pool for a slot name, creating it if absent.
func (ps *PoolSet) Slot(name string) Pool {
	pool, ok := ps.Slots[name]
	if !ok {
		pool = make(Pool)
		ps.Slots[name] = pool
	}
	return pool
}

// Merged returns a fresh pool combining a slot's own entries with the
// shared SlotAny fallback. The union happens at draw time so neither
// source pool is mutated.
func (ps *PoolSet) Merged(name string) Pool {
	merged := make(Pool)
	for phoneme, weight := range ps.Slots[name] {
		merged[phoneme] += weight
	}
	if name != SlotAny {
		for phoneme, weight := range ps.Slots[SlotAny] {
			merged[phoneme] += weight
		}
	}
	return merged
}

// Empty reports whether the set holds no phonemes in any slot.
func (ps *PoolSet) Empty() bool {
	for _, pool := range ps.Slots {
		if len(pool) > 0 {
			return false
		}
	}
	return true
}
