// Package day12 checks which regions under the trees can hold their presents.
package day12

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/advent/puzzle"
)

// Name is the puzzle title.
const Name = "Christmas Tree Farm"

func init() {
	puzzle.Register(puzzle.Problem{Year: 2025, Day: 12, Name: Name, Solver: Solution{}})
}

// Solution implements puzzle.Solver.
type Solution struct{}

// Region is a WxH area and how many presents of each shape go into it.
type Region struct {
	Width, Height int
	Counts        []int
}

// PartOne counts the regions whose area strictly exceeds the total area of
// their presents. Shapes are never rotated or packed; the area bound alone
// separates the regions that fit.
func (Solution) PartOne(input string) (int64, error) {
	shapes, regions, err := parse(input)
	if err != nil {
		return 0, err
	}
	var fits int64
	for _, r := range regions {
		need := 0
		for i, n := range r.Counts {
			need += shapes[i] * n
		}
		if r.Width*r.Height > need {
			fits++
		}
	}
	return fits, nil
}

// PartTwo returns puzzle.ErrNoSecondPart.
func (Solution) PartTwo(string) (int64, error) {
	return 0, puzzle.ErrNoSecondPart
}

// parse returns the filled-cell count of every shape and the regions.
// The last group holds the regions; every other group is "N:" followed by
// the shape rows.
func parse(input string) ([]int, []Region, error) {
	groups := puzzle.Groups(input)
	if len(groups) < 2 {
		return nil, nil, fmt.Errorf("%w: want shapes followed by regions", puzzle.ErrMalformedInput)
	}
	shapes := make([]int, 0, len(groups)-1)
	for i, g := range groups[:len(groups)-1] {
		if !strings.HasSuffix(g[0], ":") {
			return nil, nil, fmt.Errorf("%w: shape %d header %q", puzzle.ErrMalformedInput, i, g[0])
		}
		area := 0
		for _, row := range g[1:] {
			area += strings.Count(row, "#")
		}
		shapes = append(shapes, area)
	}

	lines := groups[len(groups)-1]
	regions := make([]Region, 0, len(lines))
	for _, line := range lines {
		size, counts, ok := strings.Cut(line, ":")
		w, h, okSize := strings.Cut(size, "x")
		if !ok || !okSize {
			return nil, nil, fmt.Errorf("%w: region %q", puzzle.ErrMalformedInput, line)
		}
		var (
			r   Region
			err error
		)
		if r.Width, err = puzzle.Int(w); err != nil {
			return nil, nil, err
		}
		if r.Height, err = puzzle.Int(h); err != nil {
			return nil, nil, err
		}
		if r.Counts, err = puzzle.Ints(puzzle.Fields(counts)); err != nil {
			return nil, nil, err
		}
		if len(r.Counts) > len(shapes) {
			return nil, nil, fmt.Errorf("%w: region %q lists %d shapes, only %d known",
				puzzle.ErrMalformedInput, line, len(r.Counts), len(shapes))
		}
		regions = append(regions, r)
	}
	return shapes, regions, nil
}
