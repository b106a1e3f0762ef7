package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetGenerateFlags restores the generate command's flag values after
// a test, since flag values persist across Execute calls.
func resetGenerateFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		generateCount = 1
		generateSeed = 0
		generateAttempts = 0
		generateTemplate = nil
		generateJSON = false
		generateSave = false
		generateUnique = false
	})
}

func TestGenerateCmd_Deterministic(t *testing.T) {
	resetGenerateFlags(t)
	lang := writeTestLanguage(t)

	first, _, err := execute(t, "generate", "--language", lang, "--seed", "42", "-n", "5", "fire")
	require.NoError(t, err)

	second, _, err := execute(t, "generate", "--language", lang, "--seed", "42", "-n", "5", "fire")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, strings.Fields(first), 5)
}

func TestGenerateCmd_AppliesOrthography(t *testing.T) {
	resetGenerateFlags(t)
	lang := writeTestLanguage(t)

	out, _, err := execute(t, "generate", "--language", lang, "--seed", "7", "-n", "20", "fire")
	require.NoError(t, err)

	// Every k is rewritten to kh, so no word may contain a bare k.
	for _, word := range strings.Fields(out) {
		for i := 0; i < len(word); i++ {
			if word[i] == 'k' {
				require.Less(t, i+1, len(word), "word %q ends in bare k", word)
				assert.Equal(t, byte('h'), word[i+1], "word %q has bare k", word)
			}
		}
	}
}

func TestGenerateCmd_JSON(t *testing.T) {
	resetGenerateFlags(t)
	lang := writeTestLanguage(t)

	out, _, err := execute(t, "generate", "--language", lang, "--seed", "1", "-n", "2", "--json", "fire")
	require.NoError(t, err)

	var words []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &words))
	require.Len(t, words, 2)
	assert.NotEmpty(t, words[0]["id"])
	assert.NotEmpty(t, words[0]["raw"])
	assert.NotEmpty(t, words[0]["spelled"])
}

func TestGenerateCmd_UnknownTagWarns(t *testing.T) {
	resetGenerateFlags(t)
	lang := writeTestLanguage(t)

	out, errOut, err := execute(t, "generate", "--language", lang, "--seed", "3", "fire", "ghost=2")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))
	assert.Contains(t, errOut, "ghost")
}

func TestGenerateCmd_NoShapesFails(t *testing.T) {
	resetGenerateFlags(t)
	lang := writeTestLanguage(t)

	_, _, err := execute(t, "generate", "--language", lang, "ghost")
	assert.Error(t, err)
}

func TestGenerateCmd_TemplateOverride(t *testing.T) {
	resetGenerateFlags(t)
	lang := writeTestLanguage(t)

	out, _, err := execute(t, "generate", "--language", lang, "--seed", "9", "-t", "CV,CV", "fire")
	require.NoError(t, err)

	words := strings.Fields(out)
	require.Len(t, words, 1)
	// Two CV syllables spell out to at least four characters.
	assert.GreaterOrEqual(t, len(words[0]), 4)
}

func TestGenerateCmd_BadTagWeight(t *testing.T) {
	resetGenerateFlags(t)
	lang := writeTestLanguage(t)

	_, _, err := execute(t, "generate", "--language", lang, "fire=hot")
	assert.Error(t, err)
}

func TestGenerateCmd_MissingLanguageFile(t *testing.T) {
	resetGenerateFlags(t)

	_, _, err := execute(t, "generate", "--language", "/nonexistent/language.toml", "fire")
	assert.Error(t, err)
}

func TestGenerateCmd_SaveThenList(t *testing.T) {
	resetGenerateFlags(t)
	lang := writeTestLanguage(t)
	data := t.TempDir()

	_, _, err := execute(t, "generate", "--language", lang, "--data-dir", data,
		"--seed", "11", "-n", "3", "--save", "--unique", "fire")
	require.NoError(t, err)

	out, _, err := execute(t, "lexicon", "list", "--data-dir", data)
	require.NoError(t, err)
	assert.Contains(t, out, "3 word(s)")
}
