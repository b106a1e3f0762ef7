package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortOrthography_NumericKeys(t *testing.T) {
	rules := []OrthographyRule{
		{Key: "10", Pattern: "c"},
		{Key: "2", Pattern: "b"},
		{Key: "1", Pattern: "a"},
	}

	SortOrthography(rules)

	assert.Equal(t, []string{"1", "2", "10"}, ruleKeys(rules))
}

func TestSortOrthography_NumericBeforeNamed(t *testing.T) {
	rules := []OrthographyRule{
		{Key: "default"},
		{Key: "2"},
		{Key: "aspiration"},
		{Key: "1"},
	}

	SortOrthography(rules)

	assert.Equal(t, []string{"1", "2", "aspiration", "default"}, ruleKeys(rules))
}

func TestSortOrthography_StableForEqualKeys(t *testing.T) {
	rules := []OrthographyRule{
		{Key: "1", Pattern: "first"},
		{Key: "1", Pattern: "second"},
	}

	SortOrthography(rules)

	assert.Equal(t, "first", rules[0].Pattern)
	assert.Equal(t, "second", rules[1].Pattern)
}

func ruleKeys(rules []OrthographyRule) []string {
	keys := make([]string, len(rules))
	for i, r := range rules {
		keys[i] = r.Key
	}
	return keys
}
