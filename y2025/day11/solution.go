// Package day11 counts data paths through the reactor's device graph.
package day11

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/advent/core"
	"github.com/katalvlaran/advent/dfs"
	"github.com/katalvlaran/advent/puzzle"
)

// Name is the puzzle title.
const Name = "Reactor"

// Device names the puzzle asks about.
const (
	You    = "you"
	Server = "svr"
	Out    = "out"
	DAC    = "dac"
	FFT    = "fft"
)

func init() {
	puzzle.Register(puzzle.Problem{Year: 2025, Day: 11, Name: Name, Solver: Solution{}})
}

// Solution implements puzzle.Solver.
type Solution struct{}

// PartOne counts every path from you to out.
func (Solution) PartOne(input string) (int64, error) {
	g, err := parse(input)
	if err != nil {
		return 0, err
	}
	return dfs.CountPaths(g, You, Out)
}

// PartTwo counts the paths from svr to out that pass through both dac and fft.
func (Solution) PartTwo(input string) (int64, error) {
	g, err := parse(input)
	if err != nil {
		return 0, err
	}
	return dfs.CountPathsVia(g, Server, Out, DAC, FFT)
}

// parse builds a directed graph from lines like "aaa: bbb ccc".
func parse(input string) (*core.Graph, error) {
	g := core.NewGraph(core.WithDirected(true))
	for i, line := range puzzle.Lines(input) {
		from, to, ok := strings.Cut(line, ":")
		from = strings.TrimSpace(from)
		if !ok || from == "" {
			return nil, fmt.Errorf("%w: line %d: %q", puzzle.ErrMalformedInput, i+1, line)
		}
		if err := g.AddVertex(from); err != nil {
			return nil, err
		}
		for _, dst := range puzzle.Fields(to) {
			if err := g.AddEdge(from, dst); err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", puzzle.ErrMalformedInput, i+1, err)
			}
		}
	}
	return g, nil
}
