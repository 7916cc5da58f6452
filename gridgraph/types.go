package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrCellNotFound indicates no cell holds the requested value.
	ErrCellNotFound = errors.New("gridgraph: cell not found")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Point is a (row, column) pair. Rows grow downwards, columns to the right.
type Point struct {
	Row, Col int
}

// Unit steps.
var (
	Up    = Point{-1, 0}
	Down  = Point{1, 0}
	Left  = Point{0, -1}
	Right = Point{0, 1}
)

var (
	offsets4 = []Point{Up, Right, Down, Left}
	offsets8 = []Point{Up, {-1, 1}, Right, {1, 1}, Down, {1, -1}, Left, {-1, -1}}
)

// Offsets returns the neighbor offsets for c, clockwise starting north.
// The returned slice must not be modified.
func (c Connectivity) Offsets() []Point {
	if c == Conn8 {
		return offsets8
	}
	return offsets4
}

// Grid is a rectangular grid of byte cells. Cells[r][c] holds the value at Point{r, c}.
type Grid struct {
	Width, Height int
	Cells         [][]byte
}
