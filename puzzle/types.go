package puzzle

import "errors"

var (
	// ErrUnknownProblem is returned by Lookup for an unregistered (year, day).
	ErrUnknownProblem = errors.New("puzzle: unknown problem")

	// ErrMalformedInput wraps every parse failure inside a solver.
	ErrMalformedInput = errors.New("puzzle: malformed input")

	// ErrNoSecondPart is returned by PartTwo of a problem that only has one part.
	ErrNoSecondPart = errors.New("puzzle: problem has no second part")
)

// Solver answers both parts of one problem for a given raw input.
type Solver interface {
	PartOne(input string) (int64, error)
	PartTwo(input string) (int64, error)
}

// Problem identifies a registered solver.
type Problem struct {
	Year   int
	Day    int
	Name   string
	Solver Solver
}

type key struct{ year, day int }
