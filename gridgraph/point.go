package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/advent/mathx"
)

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{p.Row + d.Row, p.Col + d.Col}
}

// Sub returns the offset from q to p.
func (p Point) Sub(q Point) Point {
	return Point{p.Row - q.Row, p.Col - q.Col}
}

// Scale multiplies both coordinates by k.
func (p Point) Scale(k int) Point {
	return Point{p.Row * k, p.Col * k}
}

// Manhattan returns the taxicab distance between p and q.
func (p Point) Manhattan(q Point) int {
	return mathx.Manhattan2(p.Row, p.Col, q.Row, q.Col)
}

// Neighbors returns the unclipped neighborhood of p under conn.
func (p Point) Neighbors(conn Connectivity) []Point {
	offs := conn.Offsets()
	out := make([]Point, len(offs))
	for i, d := range offs {
		out[i] = p.Add(d)
	}
	return out
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
