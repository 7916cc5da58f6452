package gridgraph

import (
	"strings"
)

// Parse splits text on newlines and builds a Grid from the lines.
// A single trailing newline (or CRLF) is ignored.
func Parse(text string) (*Grid, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	return New(strings.Split(text, "\n"))
}

// New constructs a Grid from a non-empty, rectangular slice of lines.
// It copies the input so later edits through Set never alias caller memory.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(lines), len(lines[0])
	cells := make([][]byte, h)
	for r, line := range lines {
		if len(line) != w {
			return nil, ErrNonRectangular
		}
		cells[r] = []byte(line)
	}
	return &Grid{Width: w, Height: h, Cells: cells}, nil
}

// InBounds reports whether p lies within the grid boundaries.
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// At returns the cell at p. ok is false when p is outside the grid.
func (g *Grid) At(p Point) (b byte, ok bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.Cells[p.Row][p.Col], true
}

// Is reports whether p is inside the grid and holds b.
func (g *Grid) Is(p Point, b byte) bool {
	v, ok := g.At(p)
	return ok && v == b
}

// Set stores b at p. Points outside the grid are ignored.
func (g *Grid) Set(p Point, b byte) {
	if g.InBounds(p) {
		g.Cells[p.Row][p.Col] = b
	}
}

// Neighbors returns the in-bounds neighbors of p, clockwise starting north.
func (g *Grid) Neighbors(p Point, conn Connectivity) []Point {
	offs := conn.Offsets()
	out := make([]Point, 0, len(offs))
	for _, d := range offs {
		if q := p.Add(d); g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// CountNeighbors reports how many in-bounds neighbors of p hold b.
func (g *Grid) CountNeighbors(p Point, conn Connectivity, b byte) int {
	n := 0
	for _, d := range conn.Offsets() {
		if g.Is(p.Add(d), b) {
			n++
		}
	}
	return n
}

// Find returns the first cell (row-major) holding b.
func (g *Grid) Find(b byte) (Point, error) {
	for r, row := range g.Cells {
		for c, v := range row {
			if v == b {
				return Point{r, c}, nil
			}
		}
	}
	return Point{}, ErrCellNotFound
}

// FindAll returns every cell holding b in row-major order.
func (g *Grid) FindAll(b byte) []Point {
	var out []Point
	for r, row := range g.Cells {
		for c, v := range row {
			if v == b {
				out = append(out, Point{r, c})
			}
		}
	}
	return out
}

// Count reports how many cells hold b.
func (g *Grid) Count(b byte) int {
	n := 0
	for _, row := range g.Cells {
		for _, v := range row {
			if v == b {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([][]byte, g.Height)
	for r := range g.Cells {
		cells[r] = append([]byte(nil), g.Cells[r]...)
	}
	return &Grid{Width: g.Width, Height: g.Height, Cells: cells}
}

// String renders the grid one row per line, without a trailing newline.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for r, row := range g.Cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(row)
	}
	return sb.String()
}

// Index maps p to a row-major index: Row*Width + Col.
func (g *Grid) Index(p Point) int {
	return p.Row*g.Width + p.Col
}

// Coordinate converts a row-major index back to a Point.
func (g *Grid) Coordinate(idx int) Point {
	return Point{idx / g.Width, idx % g.Width}
}
