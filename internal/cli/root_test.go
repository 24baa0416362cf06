// SPDX-License-Identifier: MIT
package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/search"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(t.Context())

	return out.String(), errOut.String(), err
}

const maze7x5 = "#######\n" +
	"#     #\n" +
	"### # #\n" +
	"#   # #\n" +
	"#######\n"

// solved7x5 is the BFS overlay for maze7x5 with the default endpoints: the
// first open cell (1,1) and the last one (5,3).
const solved7x5 = "#######\n" +
	"#S****#\n" +
	"###.#*#\n" +
	"# ..#G#\n" +
	"#######\n" +
	"bfs: path of 7 cells, cost 265, visited 10 cells\n"

func TestGenerate_Plain(t *testing.T) {
	out, _, err := execute(t, "generate", "--width", "7", "--height", "5", "--plain")
	require.NoError(t, err)
	assert.Equal(t, maze7x5, out)
}

func TestGenerate_OutThenSolveIn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.txt")
	_, _, err := execute(t, "generate", "--width", "7", "--height", "5", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, maze7x5, string(data))

	out, _, err := execute(t, "solve", "--in", path, "--algo", "bfs", "--plain")
	require.NoError(t, err)
	assert.Equal(t, solved7x5, out)
}

func TestSolve_Generated(t *testing.T) {
	out, _, err := execute(t, "solve", "--width", "7", "--height", "5", "-a", "bfs", "--plain")
	require.NoError(t, err)
	assert.Equal(t, solved7x5, out)
}

func TestSolve_ConfigFileAndFlagOverride(t *testing.T) {
	cfgPath := writeFile(t, "lvmaze.toml", `
[maze]
width = 7
height = 5

[solve]
algorithm = "bfs"
`)
	out, _, err := execute(t, "solve", "--config", cfgPath, "--plain")
	require.NoError(t, err)
	assert.Equal(t, solved7x5, out)

	out, _, err = execute(t, "solve", "--config", cfgPath, "--plain", "--algo", "dijkstra")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "dijkstra: path of 7 cells, cost 265,"), lines[len(lines)-1])
}

func TestSolve_Errors(t *testing.T) {
	_, _, err := execute(t, "solve", "--width", "8")
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, _, err = execute(t, "solve", "--seed", "0,0,0,0")
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, _, err = execute(t, "solve", "--width", "7", "--height", "5", "--algo", "astar")
	assert.ErrorIs(t, err, search.ErrNotImplemented)

	_, _, err = execute(t, "solve", "--in", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "solve", "--config", writeFile(t, "x.ini", ""))
	assert.ErrorIs(t, err, ErrUnsupportedConfig)

	_, _, err = execute(t, "solve", "--plain", "--width", "3", "--height", "3")
	assert.ErrorIs(t, err, ErrSameEndpoints)

	_, _, err = execute(t, "solve", "--plain", "--width", "7", "--height", "5", "--start", "1,1", "--goal", "1,1")
	assert.ErrorIs(t, err, ErrSameEndpoints)

	_, _, err = execute(t, "noise", "--mode", "perlin")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNoise_Plain(t *testing.T) {
	out, _, err := execute(t, "noise", "--noise-width", "12", "--noise-height", "4", "--smoothness", "3", "--plain")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		require.Len(t, line, 12)
		assert.Empty(t, strings.Trim(line, "# "), "only walls and passages")
	}
}

func TestNoise_TilePlain(t *testing.T) {
	out, _, err := execute(t, "noise", "--noise-width", "12", "--noise-height", "6", "--mode", "plain", "--tile", "--plain")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 6)
	for y, line := range lines {
		require.Len(t, line, 12)
		assert.Equal(t, line[:6], line[6:], "row %d repeats", y)
		assert.Equal(t, lines[y%3], line, "row %d repeats", y)
	}
}

func TestDot_Stdout(t *testing.T) {
	out, _, err := execute(t, "dot", "--width", "7", "--height", "5", "--algo", "bfs")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph maze {"))
	assert.Contains(t, out, `"1,1" -- "2,1" [label=130, color=red, penwidth=2];`)
	assert.Contains(t, out, `"5,2" -- "5,3" [label=131, color=red, penwidth=2];`)
	assert.Contains(t, out, `"1,3" -- "2,3" [label=1];`)
}

func TestVerboseLogsToStderr(t *testing.T) {
	_, stderr, err := execute(t, "generate", "--width", "5", "--height", "5", "--plain", "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "clustering pass")
	assert.Contains(t, stderr, "Carved 5x5 maze")
}
