// Package day07 follows a tachyon beam through a manifold of splitters.
package day07

import (
	"fmt"

	"github.com/katalvlaran/advent/bfs"
	"github.com/katalvlaran/advent/gridgraph"
	"github.com/katalvlaran/advent/puzzle"
)

// Name is the puzzle title.
const Name = "Laboratories"

const (
	start    = 'S'
	splitter = '^'
)

func init() {
	puzzle.Register(puzzle.Problem{Year: 2025, Day: 7, Name: Name, Solver: Solution{}})
}

// Solution implements puzzle.Solver.
type Solution struct{}

// PartOne counts the splitters the beam reaches. A beam moves down; a
// splitter sends it on from the cells to its left and right.
func (Solution) PartOne(input string) (int64, error) {
	g, s, err := parse(input)
	if err != nil {
		return 0, err
	}
	next := func(p gridgraph.Point) []gridgraph.Point {
		var out []gridgraph.Point
		if g.Is(p, splitter) {
			for _, side := range []gridgraph.Point{p.Add(gridgraph.Left), p.Add(gridgraph.Right)} {
				if g.InBounds(side) {
					out = append(out, side)
				}
			}
			return out
		}
		if down := p.Add(gridgraph.Down); g.InBounds(down) {
			out = append(out, down)
		}
		return out
	}
	var hit int64
	_, err = bfs.Search(s, next, bfs.WithOnVisit(func(p gridgraph.Point, _ int) error {
		if g.Is(p, splitter) {
			hit++
		}
		return nil
	}))
	if err != nil {
		return 0, err
	}
	return hit, nil
}

// PartTwo counts timelines: every splitter doubles the beam that reaches it,
// and a beam ends when it would leave the bottom row. The sweep keeps one
// counter per column, including columns pushed off either side.
func (Solution) PartTwo(input string) (int64, error) {
	g, s, err := parse(input)
	if err != nil {
		return 0, err
	}
	beams := map[int]int64{s.Col: 1}
	for row := s.Row; row < g.Height-1; row++ {
		next := make(map[int]int64, len(beams))
		for col, n := range beams {
			if g.Is(gridgraph.Point{Row: row, Col: col}, splitter) {
				next[col-1] += n
				next[col+1] += n
				continue
			}
			next[col] += n
		}
		beams = next
	}
	var total int64
	for _, n := range beams {
		total += n
	}
	return total, nil
}

func parse(input string) (*gridgraph.Grid, gridgraph.Point, error) {
	g, err := gridgraph.Parse(input)
	if err != nil {
		return nil, gridgraph.Point{}, fmt.Errorf("%w: %w", puzzle.ErrMalformedInput, err)
	}
	s, err := g.Find(start)
	if err != nil {
		return nil, gridgraph.Point{}, fmt.Errorf("%w: no start: %w", puzzle.ErrMalformedInput, err)
	}
	return g, s, nil
}
