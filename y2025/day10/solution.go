// Package day10 configures factory machines with as few button presses as possible.
package day10

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/advent/bfs"
	"github.com/katalvlaran/advent/matrix"
	"github.com/katalvlaran/advent/puzzle"
)

// Name is the puzzle title.
const Name = "Factory"

func init() {
	puzzle.Register(puzzle.Problem{Year: 2025, Day: 10, Name: Name, Solver: Solution{}})
}

// Solution implements puzzle.Solver.
type Solution struct{}

// Machine is one line of the manual.
type Machine struct {
	Lights  uint64  // bit i set when light i must be on
	Buttons [][]int // counters (and lights) each button touches
	Joltage []int64 // target counter values
}

var errUnreachable = errors.New("machine cannot be configured")

// PartOne sums the fewest presses that switch each machine's lights to its pattern.
func (Solution) PartOne(input string) (int64, error) {
	machines, err := parse(input)
	if err != nil {
		return 0, err
	}
	var total int64
	for i, m := range machines {
		n, err := m.FewestToggles()
		if err != nil {
			return 0, fmt.Errorf("machine %d: %w", i+1, err)
		}
		total += n
	}
	return total, nil
}

// PartTwo sums the fewest presses that raise every counter to its joltage.
func (Solution) PartTwo(input string) (int64, error) {
	machines, err := parse(input)
	if err != nil {
		return 0, err
	}
	var total int64
	for i, m := range machines {
		n, err := m.FewestIncrements()
		if err != nil {
			return 0, fmt.Errorf("machine %d: %w", i+1, err)
		}
		total += n
	}
	return total, nil
}

// FewestToggles searches light states breadth-first; each button flips its lights.
func (m Machine) FewestToggles() (int64, error) {
	masks := make([]uint64, len(m.Buttons))
	for i, b := range m.Buttons {
		for _, light := range b {
			masks[i] |= 1 << light
		}
	}
	next := func(state uint64) []uint64 {
		out := make([]uint64, len(masks))
		for i, mask := range masks {
			out[i] = state ^ mask
		}
		return out
	}
	presses := int64(-1)
	_, err := bfs.Search(uint64(0), next, bfs.WithOnVisit(func(state uint64, depth int) error {
		if state == m.Lights {
			presses = int64(depth)
			return bfs.ErrStop
		}
		return nil
	}))
	if err != nil {
		return 0, err
	}
	if presses < 0 {
		return 0, errUnreachable
	}
	return presses, nil
}

// FewestIncrements solves A·x = joltage for non-negative integer press
// counts x minimising Σx. Column j of A marks the counters button j raises.
// After elimination only the free presses are enumerated, each bounded by
// the smallest target among the counters its button raises.
func (m Machine) FewestIncrements() (int64, error) {
	a := make([][]int64, len(m.Joltage))
	for i := range a {
		a[i] = make([]int64, len(m.Buttons))
	}
	for j, b := range m.Buttons {
		for _, c := range b {
			a[c][j] = 1
		}
	}
	e, err := matrix.Reduce(a, m.Joltage)
	if errors.Is(err, matrix.ErrInconsistent) {
		return 0, errUnreachable
	}
	if err != nil {
		return 0, err
	}

	bounds := make([]int64, len(e.Free))
	for k, j := range e.Free {
		bounds[k] = m.pressBound(j)
	}

	var (
		best = int64(math.MaxInt64)
		free = make([]int64, len(e.Free))
		x    = make([]int64, e.Cols)
	)
	var walk func(k int, spent int64)
	walk = func(k int, spent int64) {
		if spent >= best {
			return
		}
		if k == len(free) {
			if !e.SolveInto(free, x) {
				return
			}
			var sum int64
			for _, v := range x {
				if v < 0 {
					return
				}
				sum += v
			}
			best = min(best, sum)
			return
		}
		for v := int64(0); v <= bounds[k]; v++ {
			free[k] = v
			walk(k+1, spent+v)
		}
	}
	walk(0, 0)

	if best == math.MaxInt64 {
		return 0, errUnreachable
	}
	return best, nil
}

// pressBound is the most times button j can be pressed without overshooting.
func (m Machine) pressBound(j int) int64 {
	if len(m.Buttons[j]) == 0 {
		return 0
	}
	bound := int64(math.MaxInt64)
	for _, c := range m.Buttons[j] {
		bound = min(bound, m.Joltage[c])
	}
	return bound
}

func parse(input string) ([]Machine, error) {
	lines := puzzle.Lines(input)
	out := make([]Machine, 0, len(lines))
	for i, line := range lines {
		m, err := parseMachine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// parseMachine reads "[.##.] (3) (1,3) {3,5,4,7}".
func parseMachine(line string) (Machine, error) {
	fields := puzzle.Fields(line)
	if len(fields) < 2 {
		return Machine{}, fmt.Errorf("%w: %q", puzzle.ErrMalformedInput, line)
	}
	pattern, ok := enclosed(fields[0], '[', ']')
	if !ok || len(pattern) > 64 {
		return Machine{}, fmt.Errorf("%w: light pattern %q", puzzle.ErrMalformedInput, fields[0])
	}
	var m Machine
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '#':
			m.Lights |= 1 << i
		case '.':
		default:
			return Machine{}, fmt.Errorf("%w: light %q", puzzle.ErrMalformedInput, pattern[i])
		}
	}

	last := fields[len(fields)-1]
	jolts, ok := enclosed(last, '{', '}')
	if !ok {
		return Machine{}, fmt.Errorf("%w: joltage %q", puzzle.ErrMalformedInput, last)
	}
	for _, f := range puzzle.Split(jolts, ",") {
		v, err := puzzle.Int64(f)
		if err != nil {
			return Machine{}, err
		}
		if v < 0 {
			return Machine{}, fmt.Errorf("%w: negative joltage %d", puzzle.ErrMalformedInput, v)
		}
		m.Joltage = append(m.Joltage, v)
	}

	for _, f := range fields[1 : len(fields)-1] {
		inner, ok := enclosed(f, '(', ')')
		if !ok {
			return Machine{}, fmt.Errorf("%w: button %q", puzzle.ErrMalformedInput, f)
		}
		wires, err := puzzle.Ints(puzzle.Split(inner, ","))
		if err != nil {
			return Machine{}, err
		}
		for _, w := range wires {
			if w < 0 || w >= len(pattern) || w >= len(m.Joltage) {
				return Machine{}, fmt.Errorf("%w: button %q wires unknown position %d", puzzle.ErrMalformedInput, f, w)
			}
		}
		m.Buttons = append(m.Buttons, wires)
	}
	return m, nil
}

// enclosed strips the left and right delimiters from s.
func enclosed(s string, left, right byte) (string, bool) {
	if len(s) < 2 || s[0] != left || s[len(s)-1] != right {
		return "", false
	}
	return strings.TrimSpace(s[1 : len(s)-1]), true
}
