// Package caves answers the passage-pathing puzzle: how many routes lead
// from the start cave to the end cave when big caves may be revisited and
// small caves may not, optionally letting one small cave be visited twice.
package caves

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ed-w-lee/advent-of-code-2021/core"
	"github.com/ed-w-lee/advent-of-code-2021/dfs"
	"github.com/ed-w-lee/advent-of-code-2021/input"
)

// Cave names with fixed roles.
const (
	Start = "start"
	End   = "end"
)

var (
	// ErrBadEdge indicates a line that is not of the form "a-b".
	ErrBadEdge = errors.New("caves: malformed passage")

	// ErrMissingCave indicates the map lacks the start or the end cave.
	ErrMissingCave = errors.New("caves: missing cave")
)

// Parse builds an undirected cave graph from "a-b" passage lines.
// Blank lines are skipped.
func Parse(lines []string) (*core.Graph, error) {
	g := core.NewGraph()
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		a, b, ok := strings.Cut(line, "-")
		if !ok || a == "" || b == "" || strings.Contains(b, "-") {
			return nil, fmt.Errorf("%w: %q on line %d", ErrBadEdge, line, i+1)
		}
		if err := g.AddEdge(a, b); err != nil {
			return nil, fmt.Errorf("%w: %q on line %d: %w", ErrBadEdge, line, i+1, err)
		}
	}
	return g, nil
}

// IsSmall reports whether a cave is small, i.e. its name starts with a
// lower-case letter.
func IsSmall(id string) bool {
	r, _ := utf8.DecodeRuneInString(id)
	return unicode.IsLower(r)
}

func isBig(id string) bool {
	return id != "" && !IsSmall(id)
}

// CountPaths returns the number of routes from Start to End that visit
// small caves at most once, or, if allowDouble is set, that visit at most
// one small cave twice. Start is never re-entered and End ends a route.
func CountPaths(g *core.Graph, allowDouble bool) (int, error) {
	for _, id := range []string{Start, End} {
		if g == nil || !g.HasVertex(id) {
			return 0, fmt.Errorf("%w: %q", ErrMissingCave, id)
		}
	}

	opts := []dfs.Option{dfs.WithRevisitable(isBig)}
	if allowDouble {
		opts = append(opts, dfs.WithRevisitBudget(1))
	}
	n, err := dfs.CountPaths(g, Start, End, opts...)
	if err != nil {
		return 0, fmt.Errorf("caves: %w", err)
	}
	return n, nil
}

// SolvePart1 counts routes with single small-cave visits for the map at path.
func SolvePart1(path string) (int, error) {
	return solve(path, false)
}

// SolvePart2 counts routes allowing one small cave twice for the map at path.
func SolvePart2(path string) (int, error) {
	return solve(path, true)
}

func solve(path string, allowDouble bool) (int, error) {
	lines, err := input.ReadLines(path)
	if err != nil {
		return 0, fmt.Errorf("caves: %w", err)
	}
	g, err := Parse(lines)
	if err != nil {
		return 0, err
	}
	return CountPaths(g, allowDouble)
}
