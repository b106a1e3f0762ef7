package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/glotblocks-cli/internal/core/domain"
)

const testLanguage = `
[definitions]
C = ["k", "t", "m"]
V = ["a", "i"]

[ontology.fire]
weight = 1.0
shapes = ["CV"]
[ontology.fire.sounds]
C = ["C"]
V = ["V"]

[[constraints]]
name = "no-double-k"
pattern = "kk"
enabled = true

[orthography."1"]
pattern = "k"
replacement = "kh"

[morphology.plural]
anchor = "fire"
shape = "V"
`

// writeTestLanguage writes a language fixture and returns its path.
func writeTestLanguage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "language.toml")
	require.NoError(t, os.WriteFile(path, []byte(testLanguage), 0600))
	return path
}

// execute runs the root command with args, capturing stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestParseTags_BareName(t *testing.T) {
	tags, err := parseTags([]string{"fire", "water"})
	require.NoError(t, err)
	assert.Equal(t, domain.Context{"fire": 1, "water": 1}, tags)
}

func TestParseTags_WithWeight(t *testing.T) {
	tags, err := parseTags([]string{"fire=2.5", "water=0"})
	require.NoError(t, err)
	assert.Equal(t, domain.Context{"fire": 2.5, "water": 0}, tags)
}

func TestParseTags_BadWeight(t *testing.T) {
	_, err := parseTags([]string{"fire=hot"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseTags_EmptyName(t *testing.T) {
	_, err := parseTags([]string{"=2"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseTags_Empty(t *testing.T) {
	tags, err := parseTags(nil)
	require.NoError(t, err)
	assert.Empty(t, tags)
}
