// Package day03 picks the largest joltage each battery bank can produce.
package day03

import (
	"fmt"

	"github.com/katalvlaran/advent/mathx"
	"github.com/katalvlaran/advent/puzzle"
)

// Name is the puzzle title.
const Name = "Lobby"

func init() {
	puzzle.Register(puzzle.Problem{Year: 2025, Day: 3, Name: Name, Solver: Solution{}})
}

// Solution implements puzzle.Solver.
type Solution struct{}

// PartOne turns on two batteries per bank.
func (Solution) PartOne(input string) (int64, error) { return total(input, 2) }

// PartTwo turns on twelve batteries per bank.
func (Solution) PartTwo(input string) (int64, error) { return total(input, 12) }

func total(input string, k int) (int64, error) {
	var sum int64
	for i, line := range puzzle.Lines(input) {
		bank, err := mathx.Digits(line)
		if err != nil {
			return 0, fmt.Errorf("%w: line %d: %v", puzzle.ErrMalformedInput, i+1, err)
		}
		v, err := Largest(bank, k)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		sum += v
	}
	return sum, nil
}

// Largest returns the biggest k-digit number formed by keeping k digits of
// bank in the order they appear. Each digit is the leftmost maximum of the
// window that still leaves room for the remaining picks.
func Largest(bank []int, k int) (int64, error) {
	if k <= 0 || len(bank) < k {
		return 0, fmt.Errorf("%w: bank of %d batteries cannot light %d", puzzle.ErrMalformedInput, len(bank), k)
	}
	var (
		out   int64
		start int
	)
	for picked := 0; picked < k; picked++ {
		end := len(bank) - (k - picked) // last index usable for this pick
		best := start
		for i := start + 1; i <= end; i++ {
			if bank[i] > bank[best] {
				best = i
			}
		}
		out = out*10 + int64(bank[best])
		start = best + 1
	}
	return out, nil
}
