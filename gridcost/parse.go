package gridcost

import (
	"fmt"
	"io"

	"github.com/ed-w-lee/advent-of-code-2021/input"
)

// Parse builds a Grid from text lines, one row per line and one decimal
// digit per cell: the character at row r, column c becomes the cost of
// (r, c). Fails with ErrEmptyGrid for no rows or an empty first row,
// ErrNonRectangular for ragged rows, and ErrInvalidDigit (wrapped with
// the offending position) for any non-digit character.
func Parse(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(lines), len(lines[0])
	g := newGrid(h, w)
	for r, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(line), w)
		}
		for c := 0; c < len(line); c++ {
			ch := line[c]
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %q at row %d, column %d", ErrInvalidDigit, rune(ch), r, c)
			}
			g.cells[g.index(r, c)] = int(ch - '0')
		}
	}
	g.present = h * w

	return g, nil
}

// ParseReader reads every line from r and parses them with Parse.
func ParseReader(r io.Reader) (*Grid, error) {
	lines, err := input.Lines(r)
	if err != nil {
		return nil, fmt.Errorf("gridcost: %w", err)
	}
	return Parse(lines)
}
