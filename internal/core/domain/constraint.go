package domain

// Constraint is a forbidden pattern checked against raw phonemic words.
// Patterns use regular-expression semantics and match anywhere in the
// word, case-sensitively; a match anywhere rejects the word.
type Constraint struct {
	// Name identifies the constraint in diagnostics.
	Name string

	// Pattern is the forbidden regular expression.
	Pattern string

	// Enabled toggles the constraint. Disabled constraints are skipped
	// entirely.
	Enabled bool
}
