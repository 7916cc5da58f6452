// Package y2025 groups the solvers of the 2025 event. Each day lives in its
// own package and registers itself with the puzzle registry from init, so a
// binary selects the days it ships with blank imports:
//
//	import _ "github.com/katalvlaran/advent/y2025/day01"
//
// Importing this package pulls in every day at once.
package y2025

import (
	_ "github.com/katalvlaran/advent/y2025/day01"
	_ "github.com/katalvlaran/advent/y2025/day02"
	_ "github.com/katalvlaran/advent/y2025/day03"
	_ "github.com/katalvlaran/advent/y2025/day04"
	_ "github.com/katalvlaran/advent/y2025/day05"
	_ "github.com/katalvlaran/advent/y2025/day06"
	_ "github.com/katalvlaran/advent/y2025/day07"
	_ "github.com/katalvlaran/advent/y2025/day08"
	_ "github.com/katalvlaran/advent/y2025/day09"
	_ "github.com/katalvlaran/advent/y2025/day10"
	_ "github.com/katalvlaran/advent/y2025/day11"
	_ "github.com/katalvlaran/advent/y2025/day12"
)

// Year is the event every package below registers under.
const Year = 2025
