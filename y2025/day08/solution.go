// Package day08 wires junction boxes into circuits, shortest links first.
package day08

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/advent/kruskal"
	"github.com/katalvlaran/advent/puzzle"
)

// Name is the puzzle title.
const Name = "Playground"

// DefaultConnections is how many closest pairs PartOne joins for the real input.
const DefaultConnections = 1000

func init() {
	puzzle.Register(puzzle.Problem{Year: 2025, Day: 8, Name: Name, Solver: Solution{Connections: DefaultConnections}})
}

// Solution implements puzzle.Solver.
type Solution struct {
	// Connections is the number of closest pairs joined before PartOne
	// measures the circuits. Zero means DefaultConnections.
	Connections int
}

// PartOne joins the closest pairs and multiplies the sizes of the three
// largest circuits.
func (s Solution) PartOne(input string) (int64, error) {
	boxes, err := parse(input)
	if err != nil {
		return 0, err
	}
	limit := s.Connections
	if limit <= 0 {
		limit = DefaultConnections
	}
	var product int64
	snapshot := func(ds *kruskal.DisjointSet[int]) {
		product = 1
		sizes := ds.SetSizes()
		for _, n := range sizes[:min(3, len(sizes))] {
			product *= int64(n)
		}
	}
	hook := func(step int, _ kruskal.Edge[int], _ bool, ds *kruskal.DisjointSet[int]) error {
		if step == limit {
			snapshot(ds)
			return kruskal.ErrStop
		}
		return nil
	}
	_, _, err = kruskal.Kruskal(indices(boxes), pairs(boxes), kruskal.WithOnEdge(hook))
	if err != nil {
		return 0, err
	}
	if product == 0 {
		// Every box joined one circuit before limit pairs were tried.
		return int64(len(boxes)), nil
	}
	return product, nil
}

// PartTwo keeps joining until everything is one circuit and multiplies the
// X coordinates of the last two boxes joined.
func (Solution) PartTwo(input string) (int64, error) {
	boxes, err := parse(input)
	if err != nil {
		return 0, err
	}
	tree, _, err := kruskal.Kruskal(indices(boxes), pairs(boxes))
	if err != nil {
		return 0, err
	}
	if len(tree) == 0 {
		return 0, fmt.Errorf("%w: need at least two junction boxes", puzzle.ErrMalformedInput)
	}
	last := tree[len(tree)-1]
	return int64(boxes[last.From][0]) * int64(boxes[last.To][0]), nil
}

func indices(boxes [][]float64) []int {
	out := make([]int, len(boxes))
	for i := range out {
		out[i] = i
	}
	return out
}

// pairs lists every unordered pair once, i < j, weighted by straight-line distance.
func pairs(boxes [][]float64) []kruskal.Edge[int] {
	out := make([]kruskal.Edge[int], 0, len(boxes)*(len(boxes)-1)/2)
	for i := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			out = append(out, kruskal.Edge[int]{From: i, To: j, Weight: floats.Distance(boxes[i], boxes[j], 2)})
		}
	}
	return out
}

func parse(input string) ([][]float64, error) {
	lines := puzzle.Lines(input)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no junction boxes", puzzle.ErrMalformedInput)
	}
	out := make([][]float64, 0, len(lines))
	for i, line := range lines {
		coords, err := puzzle.Ints(puzzle.Split(line, ","))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(coords) != 3 {
			return nil, fmt.Errorf("%w: line %d: want x,y,z", puzzle.ErrMalformedInput, i+1)
		}
		out = append(out, []float64{float64(coords[0]), float64(coords[1]), float64(coords[2])})
	}
	return out, nil
}
