package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	rootFlags.verbose = false
	solveFlags.path = false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	return out.String(), errOut.String(), err
}

// writePond stores body under name in a temp dir and returns the path.
func writePond(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestSolve_Solved(t *testing.T) {
	t.Setenv(logLevelEnv, "info")
	path := writePond(t, "food.txt", "S 3 E\n")

	out, errOut, err := execute(t, "solve", "--path", path)
	require.NoError(t, err)
	assert.Equal(t, "0 1 2 ate 3 flies\npath: 0 1 2\n", out)
	assert.Contains(t, errOut, "search finished")
	assert.Contains(t, errOut, "state=solved")
}

func TestSolve_NoSolution(t *testing.T) {
	path := writePond(t, "walled.txt", "S M M E\n")

	out, _, err := execute(t, "solve", path)
	assert.ErrorIs(t, err, errNoSolution)
	assert.Equal(t, "No solution\n", out)
}

func TestSolve_VerboseLogsSteps(t *testing.T) {
	path := writePond(t, "food.yaml", "name: food\nrows: [\"S 3 E\"]\n")

	_, errOut, err := execute(t, "solve", "-v", path)
	require.NoError(t, err)
	assert.Contains(t, errOut, "msg=eat")
	assert.Contains(t, errOut, "flies=3")
	assert.Contains(t, errOut, "msg=hop")
	assert.Contains(t, errOut, "pond=food")
}

func TestSolve_EnvOverridesVerbose(t *testing.T) {
	t.Setenv(logLevelEnv, "error")
	path := writePond(t, "food.txt", "S 3 E\n")

	_, errOut, err := execute(t, "solve", "-v", path)
	require.NoError(t, err)
	assert.Empty(t, errOut)
}

func TestSolve_LoadError(t *testing.T) {
	path := writePond(t, "bad.txt", "S Q E\n")

	_, _, err := execute(t, "solve", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown cell token")
}

func TestShow(t *testing.T) {
	path := writePond(t, "tiny.txt", "S . L\n. 2 E\n")

	out, _, err := execute(t, "show", path)
	require.NoError(t, err)
	assert.Equal(t, "tiny (2×3, 6 cells)\nS . L\n . 2 E\n\n0 1 2\n 3 4 5\n", out)
}
