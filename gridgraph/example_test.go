package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/advent/gridgraph"
)

// ExampleGrid_CountNeighbors counts the paper rolls around every roll of a
// small warehouse floor using 8-connectivity.
func ExampleGrid_CountNeighbors() {
	g, _ := gridgraph.Parse("@@.\n.@@\n@..")
	for _, p := range g.FindAll('@') {
		fmt.Printf("%v:%d ", p, g.CountNeighbors(p, gridgraph.Conn8, '@'))
	}
	fmt.Println()
	// Output:
	// (0,0):2 (0,1):3 (1,1):4 (1,2):2 (2,0):1
}
