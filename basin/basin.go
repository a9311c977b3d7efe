// Package basin answers the smoke-basin puzzle on a height map: the summed
// risk level of its low points and the product of its largest basins.
package basin

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/ed-w-lee/advent-of-code-2021/gridcost"
	"github.com/ed-w-lee/advent-of-code-2021/input"
)

// LargestCount is how many basins SolvePart2 multiplies.
const LargestCount = 3

// ErrTooFewBasins indicates that fewer basins exist than were requested.
var ErrTooFewBasins = errors.New("basin: not enough basins")

// RiskLevelSum returns the sum over every low point of its height plus one.
func RiskLevelSum(g *gridcost.Grid) int {
	sum := 0
	for _, c := range g.LowPoints() {
		h, _ := g.At(c)
		sum += h + 1
	}
	return sum
}

// LargestBasinsProduct multiplies the sizes of the k largest basins.
// Returns ErrTooFewBasins if k < 1 or g has fewer than k basins.
func LargestBasinsProduct(g *gridcost.Grid, k int) (int, error) {
	basins := g.Basins()
	if k < 1 || len(basins) < k {
		return 0, fmt.Errorf("%w: have %d, want %d", ErrTooFewBasins, len(basins), k)
	}

	sizes := make([]int, len(basins))
	for i, b := range basins {
		sizes[i] = len(b)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return product(sizes[:k]), nil
}

// SolvePart1 returns RiskLevelSum of the height map read from path.
func SolvePart1(path string) (int, error) {
	g, err := load(path)
	if err != nil {
		return 0, err
	}
	return RiskLevelSum(g), nil
}

// SolvePart2 returns LargestBasinsProduct(g, LargestCount) of the height
// map read from path.
func SolvePart2(path string) (int, error) {
	g, err := load(path)
	if err != nil {
		return 0, err
	}
	return LargestBasinsProduct(g, LargestCount)
}

func load(path string) (*gridcost.Grid, error) {
	lines, err := input.ReadLines(path)
	if err != nil {
		return nil, fmt.Errorf("basin: %w", err)
	}
	g, err := gridcost.Parse(lines)
	if err != nil {
		return nil, fmt.Errorf("basin: %s: %w", path, err)
	}
	return g, nil
}

func product[T constraints.Integer](xs []T) T {
	p := T(1)
	for _, x := range xs {
		p *= x
	}
	return p
}
