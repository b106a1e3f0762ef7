package domain

import (
	"sort"
	"strconv"
)

// OrthographyRule is one spelling rewrite, applied after a word passes
// all constraints. Rules apply strictly in ascending key order, each
// rule's output feeding the next rule's input.
type OrthographyRule struct {
	// Key determines the application sequence. Keys that parse as
	// integers compare numerically ("2" before "10"); otherwise keys
	// compare lexicographically, with numeric keys ahead of the rest.
	Key string

	// Pattern is what to rewrite. Interpreted as a regular expression;
	// patterns that fail to compile are applied as literal text.
	Pattern string

	// Replacement is the text substituted for each match.
	Replacement string
}

// SortOrthography orders rules by ascending key, in place. The sort is
// stable so rules sharing a key keep their declared order.
func SortOrthography(rules []OrthographyRule) {
	sort.SliceStable(rules, func(i, j int) bool {
		return lessRuleKey(rules[i].Key, rules[j].Key)
	})
}

// lessRuleKey compares two ordering keys: numeric keys compare as
// integers and sort before non-numeric keys.
func lessRuleKey(a, b string) bool {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	switch {
	case aerr == nil && berr == nil:
		return ai < bi
	case aerr == nil:
		return true
	case berr == nil:
		return false
	default:
		return a < b
	}
}
