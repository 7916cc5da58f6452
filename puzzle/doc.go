// Package puzzle holds the problem registry shared by every day package
// and the small text helpers those days parse their input with.
//
// Day packages register themselves from init():
//
//	func init() {
//		puzzle.Register(puzzle.Problem{Year: 2025, Day: 1, Name: Name, Solver: Solution{}})
//	}
//
// and a binary selects them with blank imports. Lookup, Problems and Years
// expose the registry to the runner.
package puzzle
