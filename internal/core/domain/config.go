package domain

import "math"

// LanguageConfig is the in-memory representation of a language definition.
// It is loaded once, ahead of generation, and treated as read-only afterwards;
// the editing tools that mutate it live outside this module.
type LanguageConfig struct {
	// Definitions maps a sound-class name (e.g. "Liquids") to its ordered
	// phoneme list.
	Definitions map[string][]string

	// Ontology maps a concept name (e.g. "fire") to its weight and
	// sound affinities.
	Ontology map[string]Concept

	// Constraints are forbidden patterns checked against raw phonemic
	// words, in declared order.
	Constraints []Constraint

	// Orthography holds spelling rewrite rules, applied in ascending
	// key order after a word is accepted.
	Orthography []OrthographyRule

	// Morphology optionally maps a grammar type (e.g. "plural") to the
	// anchor and shape used when generating grammatical suffixes.
	Morphology map[string]Morpheme
}

// Morpheme describes how to build a grammatical suffix: which concept
// anchors its sounds and which shape string it is drawn into.
type Morpheme struct {
	// Anchor is the concept whose sound affinities feed the suffix pool.
	Anchor string

	// Shape is the compact shape string the suffix is drawn into (e.g. "VC").
	Shape string
}

// Validate checks the structural invariants of a loaded configuration.
// The four core sections must be present (each may be empty), concept
// weights must be non-negative numbers, and enabled constraints must
// carry a pattern. Violations are ConfigError values wrapping
// ErrInvalidConfig.
func (c *LanguageConfig) Validate() error {
	if c.Definitions == nil {
		return &ConfigError{Section: "definitions", Reason: "section missing"}
	}
	if c.Ontology == nil {
		return &ConfigError{Section: "ontology", Reason: "section missing"}
	}
	if c.Constraints == nil {
		return &ConfigError{Section: "constraints", Reason: "section missing"}
	}
	if c.Orthography == nil {
		return &ConfigError{Section: "orthography", Reason: "section missing"}
	}

	for name, concept := range c.Ontology {
		if math.IsNaN(concept.Weight) || math.IsInf(concept.Weight, 0) {
			return &ConfigError{Section: "ontology", Field: name, Reason: "weight is not a finite number"}
		}
		if concept.Weight < 0 {
			return &ConfigError{Section: "ontology", Field: name, Reason: "weight is negative"}
		}
	}

	for _, constraint := range c.Constraints {
		if constraint.Enabled && constraint.Pattern == "" {
			return &ConfigError{Section: "constraints", Field: constraint.Name, Reason: "enabled constraint has no pattern"}
		}
	}

	return nil
}

// Definition returns the phoneme list for a sound-class name.
// The second return reports whether the name is defined.
func (c *LanguageConfig) Definition(name string) ([]string, bool) {
	phonemes, ok := c.Definitions[name]
	return phonemes, ok
}
