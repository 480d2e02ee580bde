package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/bahr-checker/internal/domain"
)

func runCLI(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestAnalyze_CleanFromStdin(t *testing.T) {
	t.Parallel()

	code, out, _ := runCLI(t, "dil hai dil hai\ndil hai dil hai\n", "analyze")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "script: ROMANIZED  mode: greedy")
	assert.Contains(t, out, "Great! Your poetry is in Bahr. Keep up the good work!")
	assert.Contains(t, out, "Your composition follows this meter:")
	assert.Contains(t, out, "\n1  dil hai dil hai")
}

func TestAnalyze_ErrorsExitTwo(t *testing.T) {
	t.Parallel()

	code, out, _ := runCLI(t, "dil hai dil hai\ndil hai dil hai\ndil hai dil\nyeh 2 dil\n", "analyze", "-")

	assert.Equal(t, 2, code)
	assert.Contains(t, out, "TOO_SHORT")
	assert.Contains(t, out, statusInvalid)
	assert.Contains(t, out, "The system could not match the Behr in the highlighted lines")
	assert.NotContains(t, out, "follows this meter")
}

func TestAnalyze_JSONFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ghazal.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("ka ", 24)), 0o644))

	code, out, _ := runCLI(t, "", "analyze", path, "--format", "json", "--mode", "fixed", "--workers", "3")
	require.Equal(t, 0, code, out)

	var res domain.CompositionResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, domain.SegmentationFixed, res.Mode)
	require.Len(t, res.Lines, 1)
	assert.Equal(t, []string{"1212", "1122", "1212", "22", "11"}, res.Lines[0].FootGroups())
}

func TestAnalyze_EmptyInput(t *testing.T) {
	t.Parallel()

	code, out, _ := runCLI(t, "  \n", "analyze")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "no lines to analyze")
}

func TestAnalyze_UsageErrors(t *testing.T) {
	t.Parallel()

	code, _, errOut := runCLI(t, "", "analyze", "--mode", "zigzag")
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, errOut)

	code, _, errOut = runCLI(t, "", "analyze", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "read composition")
}

func TestFeet(t *testing.T) {
	t.Parallel()

	code, out, _ := runCLI(t, "", "feet")
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "KEY"))
	assert.Contains(t, lines[1], "mufailun")
	assert.Contains(t, lines[1], "1212")
	assert.Contains(t, lines[1], "blue")
}

func TestVersion(t *testing.T) {
	t.Parallel()

	code, out, _ := runCLI(t, "", "version")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "bahrcheck dev"))
}

func TestHelpExitsZero(t *testing.T) {
	t.Parallel()

	code, out, _ := runCLI(t, "", "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "analyze")
}
