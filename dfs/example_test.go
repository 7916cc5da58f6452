package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/advent/core"
	"github.com/katalvlaran/advent/dfs"
)

// ExampleCountPaths counts the routes from "you" to "out" in a small
// device network.
func ExampleCountPaths() {
	g := core.NewGraph(core.WithDirected(true))
	for _, e := range [][2]string{
		{"you", "bbb"}, {"you", "ccc"},
		{"bbb", "ddd"}, {"bbb", "eee"},
		{"ccc", "ddd"}, {"ccc", "eee"}, {"ccc", "fff"},
		{"ddd", "ggg"}, {"eee", "out"}, {"fff", "out"}, {"ggg", "out"},
	} {
		_ = g.AddEdge(e[0], e[1])
	}
	n, _ := dfs.CountPaths(g, "you", "out")
	fmt.Println(n)
	// Output:
	// 5
}
