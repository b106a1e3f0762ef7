package services

import (
	"regexp"

	"github.com/custodia-labs/glotblocks-cli/internal/core/domain"
	"github.com/custodia-labs/glotblocks-cli/internal/logger"
)

// compiledConstraint pairs a constraint's diagnostic name with its
// compiled pattern.
type compiledConstraint struct {
	name string
	re   *regexp.Regexp
}

// Filter rejects raw phonemic words matching any enabled forbidden
// pattern. Matching is match-anywhere and case-sensitive: a pattern
// matching any substring of the word rejects it.
type Filter struct {
	checks []compiledConstraint
}

// NewFilter compiles the enabled constraints in their declared order.
// Disabled constraints are skipped entirely; patterns that fail to
// compile are warned about and skipped rather than failing the load.
func NewFilter(constraints []domain.Constraint) *Filter {
	f := &Filter{}
	for _, c := range constraints {
		if !c.Enabled {
			continue
		}
		re, err := regexp.Compile(c.Pattern)
		if err != nil {
			logger.Warn("constraint %q has invalid pattern %q, skipped: %v", c.Name, c.Pattern, err)
			continue
		}
		name := c.Name
		if name == "" {
			name = c.Pattern
		}
		f.checks = append(f.checks, compiledConstraint{name: name, re: re})
	}
	return f
}

// Check tests a raw word against the enabled constraints in order.
// It returns true when no constraint matches; otherwise false plus the
// name of the first matching constraint, for diagnostics.
func (f *Filter) Check(raw string) (bool, string) {
	for _, check := range f.checks {
		if check.re.MatchString(raw) {
			return false, check.name
		}
	}
	return true, ""
}

// Len reports how many constraints are active after compilation.
func (f *Filter) Len() int {
	return len(f.checks)
}
