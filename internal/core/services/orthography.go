package services

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/glotblocks-cli/internal/core/domain"
	"github.com/custodia-labs/glotblocks-cli/internal/logger"
)

// compiledRule holds one orthography rule ready to apply. A nil re
// means the pattern did not compile and is applied as literal text.
type compiledRule struct {
	pattern     string
	replacement string
	re          *regexp.Regexp
}

// Renderer applies ordered spelling rewrites to accepted raw words.
// Rules apply in ascending key order, each operating on the previous
// rule's output. No constraint re-checking happens after spelling:
// constraints police the phonemic layer only.
type Renderer struct {
	rules []compiledRule
}

// NewRenderer sorts and compiles the orthography rules. The input slice
// is not mutated.
func NewRenderer(rules []domain.OrthographyRule) *Renderer {
	ordered := make([]domain.OrthographyRule, len(rules))
	copy(ordered, rules)
	domain.SortOrthography(ordered)

	r := &Renderer{rules: make([]compiledRule, 0, len(ordered))}
	for _, rule := range ordered {
		if rule.Pattern == "" {
			continue
		}
		compiled := compiledRule{pattern: rule.Pattern, replacement: rule.Replacement}
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			logger.Debug("orthography rule %q is not a valid regexp, applying literally", rule.Pattern)
		} else {
			compiled.re = re
		}
		r.rules = append(r.rules, compiled)
	}
	return r
}

// Render produces the spelled form of a raw word by chaining every rule
// in order. A rule whose pattern never matches leaves the word unchanged.
func (r *Renderer) Render(raw string) string {
	out := raw
	for _, rule := range r.rules {
		if rule.re != nil {
			out = rule.re.ReplaceAllString(out, rule.replacement)
			continue
		}
		out = strings.ReplaceAll(out, rule.pattern, rule.replacement)
	}
	return out
}
