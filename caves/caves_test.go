package caves_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ed-w-lee/advent-of-code-2021/caves"
	"github.com/ed-w-lee/advent-of-code-2021/core"
	"github.com/ed-w-lee/advent-of-code-2021/dfs"
)

var (
	small = []string{
		"start-A", "start-b", "A-c", "A-b", "b-d", "A-end", "b-end",
	}
	medium = []string{
		"dc-end", "HN-start", "start-kj", "dc-start", "dc-HN",
		"LN-dc", "HN-end", "kj-sa", "kj-HN", "kj-dc",
	}
	large = []string{
		"fs-end", "he-DX", "fs-he", "start-DX", "pj-DX", "end-zg",
		"zg-sl", "zg-pj", "pj-he", "RW-he", "fs-DX", "pj-RW",
		"zg-RW", "start-pj", "he-WI", "zg-he", "pj-fs", "start-RW",
	}
)

func writeInput(t *testing.T, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
	return path
}

func TestSolve_Examples(t *testing.T) {
	cases := []struct {
		name         string
		lines        []string
		part1, part2 int
	}{
		{"Small", small, 10, 36},
		{"Medium", medium, 19, 103},
		{"Large", large, 226, 3509},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeInput(t, tc.lines)

			got, err := caves.SolvePart1(path)
			require.NoError(t, err)
			assert.Equal(t, tc.part1, got)

			got, err = caves.SolvePart2(path)
			require.NoError(t, err)
			assert.Equal(t, tc.part2, got)
		})
	}
}

func TestParse(t *testing.T) {
	g, err := caves.Parse(append([]string{""}, small...))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "b", "c", "d", "end", "start"}, g.Vertices())
	assert.Equal(t, 7, g.EdgeCount())
	assert.True(t, g.HasEdge("end", "A"))
}

func TestParse_BadEdge(t *testing.T) {
	for _, line := range []string{"start", "start-", "-end", "a-b-c", "a-a"} {
		_, err := caves.Parse([]string{"start-A", line})
		assert.ErrorIs(t, err, caves.ErrBadEdge, "line %q", line)
	}

	_, err := caves.Parse([]string{"x-x"})
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
}

func TestIsSmall(t *testing.T) {
	assert.True(t, caves.IsSmall("start"))
	assert.True(t, caves.IsSmall("kj"))
	assert.False(t, caves.IsSmall("HN"))
	assert.False(t, caves.IsSmall(""))
}

func TestCountPaths_Errors(t *testing.T) {
	g, err := caves.Parse([]string{"start-A", "A-b"})
	require.NoError(t, err)
	_, err = caves.CountPaths(g, false)
	assert.ErrorIs(t, err, caves.ErrMissingCave)

	_, err = caves.CountPaths(nil, true)
	assert.ErrorIs(t, err, caves.ErrMissingCave)

	// Two adjacent big caves loop forever.
	g, err = caves.Parse([]string{"start-A", "A-B", "B-end"})
	require.NoError(t, err)
	_, err = caves.CountPaths(g, false)
	assert.ErrorIs(t, err, dfs.ErrUnboundedPaths)

	_, err = caves.SolvePart1(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestCountPaths_NoRoute(t *testing.T) {
	g, err := caves.Parse([]string{"start-a", "b-end"})
	require.NoError(t, err)
	n, err := caves.CountPaths(g, true)
	require.NoError(t, err)
	assert.Zero(t, n)
}
