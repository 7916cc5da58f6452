// Package day01 turns a safe dial: 100 positions, starting at 50,
// rotated left or right by the amounts in the input.
package day01

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/katalvlaran/advent/mathx"
	"github.com/katalvlaran/advent/puzzle"
)

// Name is the puzzle title.
const Name = "Secret Entrance"

const (
	dialSize  = 100
	dialStart = 50
)

func init() {
	puzzle.Register(puzzle.Problem{Year: 2025, Day: 1, Name: Name, Solver: Solution{}})
}

// Solution implements puzzle.Solver.
type Solution struct{}

// PartOne counts rotations that leave the dial pointing at 0.
func (Solution) PartOne(input string) (int64, error) {
	rotations, err := parse(input)
	if err != nil {
		return 0, err
	}
	positions := mathx.Cumulative(values(rotations), dialStart, func(pos, delta int) int {
		return mathx.Mod(pos+delta, dialSize)
	})
	return int64(mathx.CountFunc(positions, func(pos int) bool { return pos == 0 })), nil
}

// PartTwo counts every single click that lands on 0, including those
// passed over in the middle of a rotation.
func (Solution) PartTwo(input string) (int64, error) {
	rotations, err := parse(input)
	if err != nil {
		return 0, err
	}
	var hits int64
	pos := dialStart
	for _, delta := range rotations {
		hits += int64(zeroClicks(pos, delta))
		pos = mathx.Mod(pos+delta, dialSize)
	}
	return hits, nil
}

// zeroClicks returns how many clicks of a rotation by delta starting at pos
// end on 0. Every full turn passes 0 once; the remainder does when it
// reaches or crosses it.
func zeroClicks(pos, delta int) int {
	turns, rest := mathx.DivMod(mathx.Abs(delta), dialSize)
	switch {
	case delta > 0 && pos+rest >= dialSize:
		turns++
	case delta < 0 && pos > 0 && rest >= pos:
		turns++
	}
	return turns
}

// parse reads one rotation per line as a signed delta: L is negative, R positive.
func parse(input string) ([]int, error) {
	lines := puzzle.Lines(input)
	out := make([]int, 0, len(lines))
	for i, line := range lines {
		if len(line) < 2 {
			return nil, fmt.Errorf("%w: line %d: %q", puzzle.ErrMalformedInput, i+1, line)
		}
		n, err := strconv.Atoi(line[1:])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: line %d: bad amount %q", puzzle.ErrMalformedInput, i+1, line[1:])
		}
		switch line[0] {
		case 'L':
			out = append(out, -n)
		case 'R':
			out = append(out, n)
		default:
			return nil, fmt.Errorf("%w: line %d: direction %q", puzzle.ErrMalformedInput, i+1, line[0])
		}
	}
	return out, nil
}

func values(s []int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}
