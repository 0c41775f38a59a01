package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burrow/diagram"
	"github.com/katalvlaran/burrow/search"
)

const sample = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########
`

// run executes the command tree with args and the given stdin.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestSolve_File(t *testing.T) {
	out, _, err := run(t, "", "solve", writeFile(t, "sample.txt", sample))
	require.NoError(t, err)
	require.Equal(t, "minimum cost: 12,521\n", out)
}

func TestSolve_Stdin(t *testing.T) {
	out, _, err := run(t, sample, "solve")
	require.NoError(t, err)
	require.Equal(t, "minimum cost: 12,521\n", out)
}

func TestSolve_Trace(t *testing.T) {
	out, _, err := run(t, sample, "solve", "--trace")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, sample), "trace starts with the input board")
	require.Contains(t, out, "1. ")
	require.Contains(t, out, "#...........#\n###A#B#C#D###\n  #A#B#C#D#\n")
	require.True(t, strings.HasSuffix(out, "minimum cost: 12,521\n"))
}

func TestSolve_Unfold(t *testing.T) {
	if testing.Short() {
		t.Skip("deep burrow search skipped in short mode")
	}
	out, _, err := run(t, sample, "solve", "--unfold")
	require.NoError(t, err)
	require.Equal(t, "minimum cost: 44,169\n", out)
}

func TestSolve_ConfigFile(t *testing.T) {
	// Scaling every weight scales the optimum.
	cfg := writeFile(t, "burrow.yaml", "weights: [2, 20, 200, 2000]\nlog_level: info\n")
	out, errOut, err := run(t, sample, "solve", "--config", cfg)
	require.NoError(t, err)
	require.Equal(t, "minimum cost: 25,042\n", out)
	require.Contains(t, errOut, "burrow loaded")
	require.Contains(t, errOut, "search done")

	// Flags win over the file.
	_, errOut, err = run(t, sample, "solve", "--config", cfg, "--log-level", "error")
	require.NoError(t, err)
	require.Empty(t, errOut)
}

func TestSolve_NoSolution(t *testing.T) {
	// One stop between swapped rooms: whoever steps out blocks the way home.
	out, _, err := run(t, "#####\n#...#\n#B#A#\n#####\n", "solve")
	require.NoError(t, err)
	require.Equal(t, "no solution found\n", out)
}

func TestSolve_ExpansionLimit(t *testing.T) {
	_, _, err := run(t, sample, "solve", "--max-expansions", "3")
	require.ErrorIs(t, err, search.ErrExpansionLimit)
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := run(t, "garbage\n", "solve")
	require.ErrorIs(t, err, diagram.ErrMalformed)

	_, _, err = run(t, sample, "solve", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, sample, "solve", "--log-level", "loud")
	require.Error(t, err)

	_, _, err = run(t, sample, "solve", "a", "b")
	require.Error(t, err)
}
