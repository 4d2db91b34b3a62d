package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCode(t *testing.T) {
	stdin := strings.NewReader("print('hi')\n")

	got, err := readCode(stdin, nil)
	require.NoError(t, err)
	assert.Equal(t, "print('hi')\n", got)

	path := filepath.Join(t.TempDir(), "snippet.js")
	require.NoError(t, os.WriteFile(path, []byte("const x = 1;"), 0o644))
	got, err = readCode(strings.NewReader(""), []string{path})
	require.NoError(t, err)
	assert.Equal(t, "const x = 1;", got)

	_, err = readCode(strings.NewReader(""), []string{filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, err)
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "a := 1 ...", firstLine("  a := 1\nb := 2", 40))
	assert.Equal(t, "abcde...", firstLine("abcdefgh", 5))
}

func TestSectionsCommand(t *testing.T) {
	var out bytes.Buffer
	sectionsCmd.SetOut(&out)
	t.Cleanup(func() { sectionsCmd.SetOut(nil) })

	require.NoError(t, sectionsCmd.RunE(sectionsCmd, nil))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "api-cheatsheet"))
	assert.True(t, strings.HasPrefix(lines[2], "code-explainer"))
}

func TestSectionsShowUnknown(t *testing.T) {
	err := sectionsShowCmd.RunE(sectionsShowCmd, []string{"nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api-cheatsheet")
}
