package domain

// SlotAny is the reserved slot name for the generic fallback pool.
// Sounds added under it are unioned into every slot's pool at draw time
// rather than merged destructively, so editing one slot never depletes
// another.
const SlotAny = "any"

// Concept is a named semantic anchor (e.g. "fire") carrying a relative
// weight and the sounds and shapes it favours.
type Concept struct {
	// Weight is the concept's base importance. Must be >= 0; a concept
	// with weight 0 contributes no probability mass but may still be
	// referenced.
	Weight float64

	// AddSounds maps a slot name to the entries the concept contributes
	// to that slot. Each entry is either a Definition name to expand or
	// a literal phoneme. Entries under SlotAny (or an empty slot name)
	// feed the shared fallback pool.
	AddSounds map[string][]string

	// AddShapes lists the compact shape strings the concept favours for
	// whole words (e.g. "CVC", "CV(C)"), each weighted by the concept's
	// effective weight.
	AddShapes []string
}

// Context is a generation request's tag set: a mapping from concept name
// to a caller-supplied scalar. The effective weight of a concept is its
// base weight multiplied by the scalar, so an unspecified scalar of 1
// yields the concept's own weight.
type Context map[string]float64

// Clone returns an independent copy of the context.
func (c Context) Clone() Context {
	out := make(Context, len(c))
	for tag, scalar := range c {
		out[tag] = scalar
	}
	return out
}
