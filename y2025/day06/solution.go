// Package day06 evaluates a worksheet of vertically written arithmetic problems.
package day06

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/advent/gridgraph"
	"github.com/katalvlaran/advent/puzzle"
)

// Name is the puzzle title.
const Name = "Trash Compactor"

func init() {
	puzzle.Register(puzzle.Problem{Year: 2025, Day: 6, Name: Name, Solver: Solution{}})
}

// Solution implements puzzle.Solver.
type Solution struct{}

// PartOne reads each problem as the column of whitespace-separated numbers
// above its operator.
func (Solution) PartOne(input string) (int64, error) {
	rows, ops, err := split(input)
	if err != nil {
		return 0, err
	}
	columns := make([][]int64, len(ops))
	for r, row := range rows {
		fields := puzzle.Fields(row)
		if len(fields) != len(ops) {
			return 0, fmt.Errorf("%w: row %d has %d numbers for %d operators",
				puzzle.ErrMalformedInput, r+1, len(fields), len(ops))
		}
		for c, f := range fields {
			v, err := puzzle.Int64(f)
			if err != nil {
				return 0, err
			}
			columns[c] = append(columns[c], v)
		}
	}
	var total int64
	for c, op := range ops {
		total += fold(op, columns[c])
	}
	return total, nil
}

// PartTwo reads numbers column by column: every character column holds one
// number written top to bottom, and fully blank columns separate problems.
func (Solution) PartTwo(input string) (int64, error) {
	rows, ops, err := split(input)
	if err != nil {
		return 0, err
	}
	var (
		total int64
		nums  []int64
		next  int
	)
	flush := func() error {
		if len(nums) == 0 {
			return nil
		}
		if next >= len(ops) {
			return fmt.Errorf("%w: more problems than operators", puzzle.ErrMalformedInput)
		}
		total += fold(ops[next], nums)
		next++
		nums = nums[:0]
		return nil
	}
	for _, col := range gridgraph.Transpose(rows) {
		if gridgraph.IsBlank(col) {
			if err := flush(); err != nil {
				return 0, err
			}
			continue
		}
		v, err := puzzle.Int64(col)
		if err != nil {
			return 0, err
		}
		nums = append(nums, v)
	}
	if err := flush(); err != nil {
		return 0, err
	}
	if next != len(ops) {
		return 0, fmt.Errorf("%w: %d problems for %d operators", puzzle.ErrMalformedInput, next, len(ops))
	}
	return total, nil
}

// fold multiplies for '*' and adds for anything else.
func fold(op byte, nums []int64) int64 {
	if op == '*' {
		acc := int64(1)
		for _, n := range nums {
			acc *= n
		}
		return acc
	}
	var acc int64
	for _, n := range nums {
		acc += n
	}
	return acc
}

// split separates the number rows from the trailing operator row.
func split(input string) ([]string, []byte, error) {
	lines := puzzle.Lines(input)
	if len(lines) < 2 {
		return nil, nil, fmt.Errorf("%w: need number rows and an operator row", puzzle.ErrMalformedInput)
	}
	var ops []byte
	for _, f := range puzzle.Fields(lines[len(lines)-1]) {
		if len(f) != 1 || !strings.ContainsAny(f, "+*") {
			return nil, nil, fmt.Errorf("%w: operator %q", puzzle.ErrMalformedInput, f)
		}
		ops = append(ops, f[0])
	}
	if len(ops) == 0 {
		return nil, nil, fmt.Errorf("%w: no operators", puzzle.ErrMalformedInput)
	}
	return lines[:len(lines)-1], ops, nil
}
