// Package day02 sums product IDs whose digits are one block repeated.
package day02

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/mathx"
	"github.com/katalvlaran/advent/puzzle"
)

// Name is the puzzle title.
const Name = "Gift Shop"

func init() {
	puzzle.Register(puzzle.Problem{Year: 2025, Day: 2, Name: Name, Solver: Solution{}})
}

// Solution implements puzzle.Solver.
type Solution struct{}

type idRange struct{ first, last int64 }

// PartOne sums IDs made of a block repeated exactly twice.
func (Solution) PartOne(input string) (int64, error) {
	return sumInvalid(input, func(n int) int { return (n + 1) / 2 })
}

// PartTwo sums IDs made of a block repeated at least twice.
func (Solution) PartTwo(input string) (int64, error) {
	return sumInvalid(input, func(int) int { return 1 })
}

// sumInvalid adds every ID in the input ranges that Repeating accepts with
// the minimum block length chosen by minBlock from the ID's digit count.
func sumInvalid(input string, minBlock func(digits int) int) (int64, error) {
	ranges, err := parse(input)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, r := range ranges {
		for id := range mathx.Range(r.first, r.last+1) {
			s := strconv.FormatInt(id, 10)
			if Repeating(s, minBlock(len(s))) {
				total += id
			}
		}
	}
	return total, nil
}

// Repeating reports whether s is some prefix of length >= minBlock repeated
// two or more times.
func Repeating(s string, minBlock int) bool {
	for size := max(minBlock, 1); size <= len(s)/2; size++ {
		if len(s)%size != 0 {
			continue
		}
		if strings.Repeat(s[:size], len(s)/size) == s {
			return true
		}
	}
	return false
}

func parse(input string) ([]idRange, error) {
	fields := puzzle.Split(input, ",")
	out := make([]idRange, 0, len(fields))
	for _, f := range fields {
		lo, hi, ok := strings.Cut(f, "-")
		if !ok {
			return nil, fmt.Errorf("%w: range %q", puzzle.ErrMalformedInput, f)
		}
		first, err := puzzle.Int64(lo)
		if err != nil {
			return nil, err
		}
		last, err := puzzle.Int64(hi)
		if err != nil {
			return nil, err
		}
		if first > last {
			return nil, fmt.Errorf("%w: range %q is reversed", puzzle.ErrMalformedInput, f)
		}
		out = append(out, idRange{first, last})
	}
	return out, nil
}
