// Package advent is a collection of puzzle solvers and the small algorithm
// library they share.
//
// Library packages, usable on their own:
//
//	mathx/     integer ranges, running folds, GCD/LCM, modulo, Manhattan distance
//	gridgraph/ rectangular character grids, points, 4/8-neighbourhoods, transpose
//	bfs/       generic breadth-first search with hooks, depth limits and paths
//	core/      thread-safe string-keyed graph, directed or undirected
//	dfs/       topological sort and path counting over directed acyclic graphs
//	kruskal/   disjoint sets and Kruskal's minimum spanning tree with step hooks
//	matrix/    exact integer linear systems in reduced row echelon form
//
// Puzzles:
//
//	puzzle/       problem registry and input parsing helpers
//	y2025/dayNN/  one package per day, registered from init
//	cmd/aoc       command-line runner (see internal/runner)
//
// Every package reports failures with sentinel errors wrapped by fmt.Errorf,
// to be matched with errors.Is.
package advent
