// Package day05 checks ingredient IDs against fresh ranges.
package day05

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/advent/puzzle"
)

// Name is the puzzle title.
const Name = "Cafeteria"

func init() {
	puzzle.Register(puzzle.Problem{Year: 2025, Day: 5, Name: Name, Solver: Solution{}})
}

// Solution implements puzzle.Solver.
type Solution struct{}

// Span is an inclusive ID range.
type Span struct{ First, Last int64 }

// PartOne counts available IDs that fall inside any fresh range.
func (Solution) PartOne(input string) (int64, error) {
	spans, ids, err := parse(input)
	if err != nil {
		return 0, err
	}
	spans = Merge(spans)
	var fresh int64
	for _, id := range ids {
		// First span whose end is not before id.
		i, _ := slices.BinarySearchFunc(spans, id, func(s Span, id int64) int {
			if s.Last < id {
				return -1
			}
			return 1
		})
		if i < len(spans) && spans[i].First <= id {
			fresh++
		}
	}
	return fresh, nil
}

// PartTwo counts every ID the fresh ranges cover.
func (Solution) PartTwo(input string) (int64, error) {
	spans, _, err := parse(input)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, s := range Merge(spans) {
		total += s.Last - s.First + 1
	}
	return total, nil
}

// Merge sorts spans by start and joins every span that starts at or before
// the end of the one being built. The result is sorted and disjoint.
func Merge(spans []Span) []Span {
	if len(spans) == 0 {
		return nil
	}
	sorted := slices.Clone(spans)
	slices.SortFunc(sorted, func(a, b Span) int {
		if a.First != b.First {
			return compare(a.First, b.First)
		}
		return compare(a.Last, b.Last)
	})
	out := []Span{sorted[0]}
	for _, s := range sorted[1:] {
		cur := &out[len(out)-1]
		if s.First <= cur.Last {
			cur.Last = max(cur.Last, s.Last)
			continue
		}
		out = append(out, s)
	}
	return out
}

func compare(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func parse(input string) ([]Span, []int64, error) {
	groups := puzzle.Groups(input)
	if len(groups) == 0 || len(groups) > 2 {
		return nil, nil, fmt.Errorf("%w: want ranges and IDs separated by a blank line", puzzle.ErrMalformedInput)
	}
	spans := make([]Span, 0, len(groups[0]))
	for _, line := range groups[0] {
		lo, hi, ok := strings.Cut(line, "-")
		if !ok {
			return nil, nil, fmt.Errorf("%w: range %q", puzzle.ErrMalformedInput, line)
		}
		first, err := puzzle.Int64(lo)
		if err != nil {
			return nil, nil, err
		}
		last, err := puzzle.Int64(hi)
		if err != nil {
			return nil, nil, err
		}
		if first > last {
			return nil, nil, fmt.Errorf("%w: range %q is reversed", puzzle.ErrMalformedInput, line)
		}
		spans = append(spans, Span{first, last})
	}
	var ids []int64
	if len(groups) == 2 {
		for _, line := range groups[1] {
			id, err := puzzle.Int64(line)
			if err != nil {
				return nil, nil, err
			}
			ids = append(ids, id)
		}
	}
	return spans, ids, nil
}
