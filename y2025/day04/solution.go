// Package day04 finds paper rolls a forklift can reach.
package day04

import (
	"fmt"

	"github.com/katalvlaran/advent/gridgraph"
	"github.com/katalvlaran/advent/puzzle"
)

// Name is the puzzle title.
const Name = "Printing Department"

const (
	roll  = '@'
	empty = '.'

	// A roll is accessible with fewer than this many rolls around it.
	crowded = 4
)

func init() {
	puzzle.Register(puzzle.Problem{Year: 2025, Day: 4, Name: Name, Solver: Solution{}})
}

// Solution implements puzzle.Solver.
type Solution struct{}

// PartOne counts the rolls that are accessible right away.
func (Solution) PartOne(input string) (int64, error) {
	g, err := parse(input)
	if err != nil {
		return 0, err
	}
	return int64(len(accessible(g))), nil
}

// PartTwo keeps removing accessible rolls until none is left and counts the removals.
// Only neighbours of a removed roll can become accessible, so they are the
// only cells rechecked.
func (Solution) PartTwo(input string) (int64, error) {
	g, err := parse(input)
	if err != nil {
		return 0, err
	}
	queue := accessible(g)
	var removed int64
	for head := 0; head < len(queue); head++ {
		p := queue[head]
		if !g.Is(p, roll) || g.CountNeighbors(p, gridgraph.Conn8, roll) >= crowded {
			continue
		}
		g.Set(p, empty)
		removed++
		for _, nb := range g.Neighbors(p, gridgraph.Conn8) {
			if g.Is(nb, roll) {
				queue = append(queue, nb)
			}
		}
	}
	return removed, nil
}

func accessible(g *gridgraph.Grid) []gridgraph.Point {
	var out []gridgraph.Point
	for _, p := range g.FindAll(roll) {
		if g.CountNeighbors(p, gridgraph.Conn8, roll) < crowded {
			out = append(out, p)
		}
	}
	return out
}

func parse(input string) (*gridgraph.Grid, error) {
	g, err := gridgraph.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", puzzle.ErrMalformedInput, err)
	}
	return g, nil
}
