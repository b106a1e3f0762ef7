package domain

import "time"

// Rejection records one discarded generation attempt for diagnostics:
// the raw candidate and the constraint that matched it.
type Rejection struct {
	// Word is the rejected raw phonemic form.
	Word string

	// Constraint is the name of the constraint that matched.
	Constraint string
}

// GeneratedWord is one accepted output word. It is created fresh per
// generation call and has no lifetime beyond it unless saved to a lexicon.
type GeneratedWord struct {
	// ID uniquely identifies the word when stored in a lexicon.
	ID string

	// Raw is the phonemic form, before spelling.
	Raw string

	// Spelled is the final written form after orthography rules.
	Spelled string

	// Context is the tag-weight mapping that produced the word.
	Context Context

	// Attempts is how many candidates were drawn before acceptance.
	Attempts int

	// Rejections lists the attempts discarded on the way, for
	// diagnostic consumers.
	Rejections []Rejection

	// CreatedAt is when the word was generated.
	CreatedAt time.Time
}

// GenerateRequest describes one batch generation call.
type GenerateRequest struct {
	// Context maps concept names to scalars. Scalars default to 1 when
	// the caller leaves them unset, yielding each concept's base weight.
	Context Context

	// Count is the number of words requested. Defaults to 1.
	Count int

	// Attempts bounds the retries per word. Zero means the generator's
	// configured budget.
	Attempts int

	// Template optionally overrides the syllable shapes, one compact
	// shape string per syllable. When empty, shapes come from the
	// active concepts' affinities.
	Template []string

	// Unique rejects words already present in the lexicon, extending
	// them with an extra syllable before retrying.
	Unique bool

	// Save stores accepted words in the lexicon.
	Save bool
}

// GenerateFailure reports one requested word whose retry budget was
// spent without an acceptable candidate.
type GenerateFailure struct {
	// Attempts is the exhausted budget.
	Attempts int

	// Rejections lists what was tried and which constraints matched.
	Rejections []Rejection
}

// GenerateResult is the outcome of a batch: as many words as could be
// produced, plus a failure record per exhausted word. One word's
// exhaustion does not abort the batch.
type GenerateResult struct {
	// Words are the accepted words, in generation order.
	Words []GeneratedWord

	// Failures describe words the retry budget could not produce.
	Failures []GenerateFailure
}

// Exhausted reports whether any requested word failed.
func (r *GenerateResult) Exhausted() bool {
	return len(r.Failures) > 0
}
