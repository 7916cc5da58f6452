package puzzle

import (
	"fmt"
	"slices"
	"sync"
)

var (
	mu       sync.RWMutex
	problems = make(map[key]Problem)
)

// Register adds p to the registry. It panics when p has no solver or
// (Year, Day) is already taken; both are programming errors caught at init.
func Register(p Problem) {
	if p.Solver == nil {
		panic(fmt.Sprintf("puzzle: nil solver for %d day %d", p.Year, p.Day))
	}
	mu.Lock()
	defer mu.Unlock()
	k := key{p.Year, p.Day}
	if _, dup := problems[k]; dup {
		panic(fmt.Sprintf("puzzle: %d day %d registered twice", p.Year, p.Day))
	}
	problems[k] = p
}

// Lookup returns the problem registered for (year, day).
func Lookup(year, day int) (Problem, error) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := problems[key{year, day}]
	if !ok {
		return Problem{}, fmt.Errorf("%w: %d day %d", ErrUnknownProblem, year, day)
	}
	return p, nil
}

// Problems returns every problem of year ordered by day.
func Problems(year int) []Problem {
	mu.RLock()
	defer mu.RUnlock()
	var out []Problem
	for k, p := range problems {
		if k.year == year {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b Problem) int { return a.Day - b.Day })
	return out
}

// Years returns the distinct registered years in ascending order.
func Years() []int {
	mu.RLock()
	defer mu.RUnlock()
	var out []int
	for k := range problems {
		if !slices.Contains(out, k.year) {
			out = append(out, k.year)
		}
	}
	slices.Sort(out)
	return out
}
