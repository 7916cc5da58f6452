// Package day09 finds the largest rectangle with red tiles at opposite corners.
package day09

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/advent/puzzle"
)

// Name is the puzzle title.
const Name = "Movie Theater"

func init() {
	puzzle.Register(puzzle.Problem{Year: 2025, Day: 9, Name: Name, Solver: Solution{}})
}

// Solution implements puzzle.Solver.
type Solution struct{}

type tile struct{ x, y int64 }

// box is an axis-aligned rectangle with inclusive bounds.
type box struct{ minX, maxX, minY, maxY int64 }

func boxOf(a, b tile) box {
	return box{min(a.x, b.x), max(a.x, b.x), min(a.y, b.y), max(a.y, b.y)}
}

// area counts the tiles the box covers.
func (b box) area() int64 {
	return (b.maxX - b.minX + 1) * (b.maxY - b.minY + 1)
}

// crosses reports whether b and o share interior on both axes.
// Boxes that only touch along a border do not cross.
func (b box) crosses(o box) bool {
	return b.maxX > o.minX && o.maxX > b.minX &&
		b.maxY > o.minY && o.maxY > b.minY
}

// PartOne returns the largest rectangle spanned by any two red tiles.
func (Solution) PartOne(input string) (int64, error) {
	tiles, err := parse(input)
	if err != nil {
		return 0, err
	}
	var best int64
	for i := range tiles {
		for j := i + 1; j < len(tiles); j++ {
			best = max(best, boxOf(tiles[i], tiles[j]).area())
		}
	}
	return best, nil
}

// PartTwo returns the largest such rectangle that stays inside the loop the
// red tiles draw: no edge of the loop may cut through it.
func (Solution) PartTwo(input string) (int64, error) {
	tiles, err := parse(input)
	if err != nil {
		return 0, err
	}
	edges := make([]box, len(tiles))
	for i, t := range tiles {
		edges[i] = boxOf(t, tiles[(i+1)%len(tiles)])
	}
	var candidates []box
	for i := range tiles {
		for j := i + 1; j < len(tiles); j++ {
			candidates = append(candidates, boxOf(tiles[i], tiles[j]))
		}
	}
	slices.SortFunc(candidates, func(a, b box) int {
		return cmp.Compare(b.area(), a.area())
	})
	for _, c := range candidates {
		if !slices.ContainsFunc(edges, c.crosses) {
			return c.area(), nil
		}
	}
	return 0, nil
}

func parse(input string) ([]tile, error) {
	lines := puzzle.Lines(input)
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: need at least two red tiles", puzzle.ErrMalformedInput)
	}
	out := make([]tile, 0, len(lines))
	for i, line := range lines {
		f := puzzle.Split(line, ",")
		if len(f) != 2 {
			return nil, fmt.Errorf("%w: line %d: want x,y", puzzle.ErrMalformedInput, i+1)
		}
		x, err := puzzle.Int64(f[0])
		if err != nil {
			return nil, err
		}
		y, err := puzzle.Int64(f[1])
		if err != nil {
			return nil, err
		}
		out = append(out, tile{x, y})
	}
	return out, nil
}
