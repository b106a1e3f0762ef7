package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// SlotGroup is one structural unit of a syllable shape: an ordered run of
// slot names that is either always present or included as a whole with
// probability one half.
type SlotGroup struct {
	// Slots are the slot names drawn in order when the group is present.
	Slots []string

	// Optional marks the group as present-or-absent as a unit, the way
	// "(C)" marks an optional coda in a compact shape string.
	Optional bool
}

// SyllableShape is the ordered internal structure of one shape template.
type SyllableShape struct {
	// Source is the string the shape was parsed from, kept for
	// diagnostics and stable weighted selection.
	Source string

	// Groups are the shape's slot groups in order.
	Groups []SlotGroup
}

// WordTemplate is an ordered sequence of syllable shapes; a word is one
// or more syllables drawn shape by shape.
type WordTemplate []SyllableShape

// ParseShape parses a shape string into a SyllableShape.
//
// A shape string is a whitespace-separated list of fields. A field
// containing a lowercase letter names one slot in full ("onset"), so
// multi-rune slot names stay addressable; any other field is compact
// notation where each rune names one slot ("CVC"). Parentheses mark an
// optional group included or dropped as a whole: "(C)" and "(CC)" in
// compact fields, "(coda)" around a named slot.
//
// Returns ErrInvalidInput for empty strings and unbalanced parentheses.
func ParseShape(s string) (SyllableShape, error) {
	if strings.TrimSpace(s) == "" {
		return SyllableShape{}, fmt.Errorf("parse shape: empty shape string: %w", ErrInvalidInput)
	}

	shape := SyllableShape{Source: s}
	for _, field := range strings.Fields(s) {
		groups, err := parseField(field)
		if err != nil {
			return SyllableShape{}, fmt.Errorf("parse shape %q: %w", s, err)
		}
		shape.Groups = append(shape.Groups, groups...)
	}
	return shape, nil
}

// parseField parses one whitespace-delimited field of a shape string.
func parseField(field string) ([]SlotGroup, error) {
	if hasLower(field) {
		return parseNamedSlot(field)
	}
	return parseCompact(field)
}

// parseNamedSlot treats the whole field as a single slot name, optional
// when wrapped in parentheses.
func parseNamedSlot(field string) ([]SlotGroup, error) {
	optional := false
	if strings.HasPrefix(field, "(") && strings.HasSuffix(field, ")") {
		optional = true
		field = strings.TrimSuffix(strings.TrimPrefix(field, "("), ")")
	}
	if field == "" || strings.ContainsAny(field, "()") {
		return nil, fmt.Errorf("malformed slot %q: %w", field, ErrInvalidInput)
	}
	return []SlotGroup{{Slots: []string{field}, Optional: optional}}, nil
}

// parseCompact treats each rune of the field as one slot.
func parseCompact(field string) ([]SlotGroup, error) {
	var groups []SlotGroup
	var group *SlotGroup

	for _, r := range field {
		switch r {
		case '(':
			if group != nil {
				return nil, fmt.Errorf("nested parenthesis in %q: %w", field, ErrInvalidInput)
			}
			group = &SlotGroup{Optional: true}
		case ')':
			if group == nil || len(group.Slots) == 0 {
				return nil, fmt.Errorf("empty or unmatched parenthesis in %q: %w", field, ErrInvalidInput)
			}
			groups = append(groups, *group)
			group = nil
		default:
			if group != nil {
				group.Slots = append(group.Slots, string(r))
				continue
			}
			groups = append(groups, SlotGroup{Slots: []string{string(r)}})
		}
	}

	if group != nil {
		return nil, fmt.Errorf("unclosed parenthesis in %q: %w", field, ErrInvalidInput)
	}
	return groups, nil
}

// hasLower reports whether any rune of s is a lowercase letter.
func hasLower(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}

// ParseTemplate parses an ordered list of shape strings into a
// WordTemplate, one SyllableShape per entry.
func ParseTemplate(shapes []string) (WordTemplate, error) {
	if len(shapes) == 0 {
		return nil, fmt.Errorf("parse template: no shapes: %w", ErrInvalidInput)
	}

	template := make(WordTemplate, 0, len(shapes))
	for _, s := range shapes {
		shape, err := ParseShape(s)
		if err != nil {
			return nil, err
		}
		template = append(template, shape)
	}
	return template, nil
}
