package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCmd_ValidFile(t *testing.T) {
	lang := writeTestLanguage(t)

	out, _, err := execute(t, "validate", "--language", lang)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
	assert.Contains(t, out, "definitions: 2")
	assert.Contains(t, out, "concepts:    1")
	assert.Contains(t, out, "constraints: 1 (1 enabled)")
	assert.Contains(t, out, "morphology:  1")
}

func TestValidateCmd_MissingSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "language.toml")
	content := `
[definitions]
C = ["k"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	_, _, err := execute(t, "validate", "--language", path)
	assert.Error(t, err)
}

func TestValidateCmd_WarnsOnBadConstraintPattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "language.toml")
	content := `
constraints = [{ name = "broken", pattern = "(", enabled = true }]

[definitions]
C = ["k"]

[ontology.fire]
weight = 1.0

[orthography]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	out, errOut, err := execute(t, "validate", "--language", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
	assert.Contains(t, errOut, "broken")
}

func TestValidateCmd_FileNotFound(t *testing.T) {
	_, _, err := execute(t, "validate", "--language", "/nonexistent/language.toml")
	assert.Error(t, err)
}
