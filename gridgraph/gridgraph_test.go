package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/gridgraph"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New and Parse reject empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		err   error
	}{
		{"EmptyRows", []string{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", []string{""}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", []string{"ab", "c"}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.New(tc.lines)
			require.ErrorIs(t, err, tc.err)
		})
	}

	_, err := gridgraph.Parse("\n")
	require.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}

func TestParse_TrailingNewlineAndCRLF(t *testing.T) {
	g, err := gridgraph.Parse("ab\r\ncd\r\n")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, "ab\ncd", g.String())
}

func TestNew_CopiesInput(t *testing.T) {
	lines := []string{"..", ".."}
	g, err := gridgraph.New(lines)
	require.NoError(t, err)
	g.Set(gridgraph.Point{Row: 0, Col: 0}, '#')
	assert.Equal(t, "..", lines[0])
	assert.Equal(t, "#.\n..", g.String())
}

//----------------------------------------------------------------------------//
// Queries
//----------------------------------------------------------------------------//

func TestAtAndInBounds(t *testing.T) {
	g, err := gridgraph.Parse("abc\ndef")
	require.NoError(t, err)

	b, ok := g.At(gridgraph.Point{Row: 1, Col: 2})
	require.True(t, ok)
	assert.Equal(t, byte('f'), b)

	for _, p := range []gridgraph.Point{{-1, 0}, {0, 3}, {2, 0}, {0, -1}} {
		_, ok := g.At(p)
		assert.False(t, ok, "At(%v)", p)
		assert.False(t, g.InBounds(p), "InBounds(%v)", p)
	}

	// Set outside the grid is ignored.
	g.Set(gridgraph.Point{Row: 5, Col: 5}, 'z')
	assert.Equal(t, "abc\ndef", g.String())
}

func TestNeighbors_ClippedAndOrdered(t *testing.T) {
	g, err := gridgraph.Parse("...\n...\n...")
	require.NoError(t, err)

	corner := gridgraph.Point{Row: 0, Col: 0}
	assert.Equal(t,
		[]gridgraph.Point{{0, 1}, {1, 0}},
		g.Neighbors(corner, gridgraph.Conn4))
	assert.Equal(t,
		[]gridgraph.Point{{0, 1}, {1, 1}, {1, 0}},
		g.Neighbors(corner, gridgraph.Conn8))

	center := gridgraph.Point{Row: 1, Col: 1}
	assert.Len(t, g.Neighbors(center, gridgraph.Conn4), 4)
	assert.Len(t, g.Neighbors(center, gridgraph.Conn8), 8)
	assert.Len(t, center.Neighbors(gridgraph.Conn8), 8)
}

func TestCountNeighbors(t *testing.T) {
	g, err := gridgraph.Parse("@@.\n@@@\n..@")
	require.NoError(t, err)
	assert.Equal(t, 5, g.CountNeighbors(gridgraph.Point{Row: 1, Col: 1}, gridgraph.Conn8, '@'))
	assert.Equal(t, 3, g.CountNeighbors(gridgraph.Point{Row: 1, Col: 1}, gridgraph.Conn4, '@'))
	assert.Equal(t, 2, g.CountNeighbors(gridgraph.Point{Row: 2, Col: 2}, gridgraph.Conn8, '@'))
}

func TestFindFindAllCount(t *testing.T) {
	g, err := gridgraph.Parse(".S.\n^.^\n.^.")
	require.NoError(t, err)

	s, err := g.Find('S')
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Point{Row: 0, Col: 1}, s)

	_, err = g.Find('X')
	require.ErrorIs(t, err, gridgraph.ErrCellNotFound)

	assert.Equal(t, []gridgraph.Point{{1, 0}, {1, 2}, {2, 1}}, g.FindAll('^'))
	assert.Equal(t, 3, g.Count('^'))
	assert.Equal(t, 5, g.Count('.'))
}

func TestCloneIsIndependent(t *testing.T) {
	g, err := gridgraph.Parse("ab\ncd")
	require.NoError(t, err)
	c := g.Clone()
	c.Set(gridgraph.Point{Row: 1, Col: 1}, 'x')
	assert.Equal(t, "ab\ncd", g.String())
	assert.Equal(t, "ab\ncx", c.String())
}

func TestIndexCoordinateRoundTrip(t *testing.T) {
	g, err := gridgraph.Parse("abcd\nefgh\nijkl")
	require.NoError(t, err)
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			p := gridgraph.Point{Row: r, Col: c}
			assert.Equal(t, p, g.Coordinate(g.Index(p)))
		}
	}
	assert.Equal(t, 6, g.Index(gridgraph.Point{Row: 1, Col: 2}))
}

//----------------------------------------------------------------------------//
// Points and transpose
//----------------------------------------------------------------------------//

func TestPointArithmetic(t *testing.T) {
	p := gridgraph.Point{Row: 3, Col: -2}
	assert.Equal(t, gridgraph.Point{Row: 4, Col: -2}, p.Add(gridgraph.Down))
	assert.Equal(t, gridgraph.Point{Row: 3, Col: -3}, p.Add(gridgraph.Left))
	assert.Equal(t, gridgraph.Point{Row: 2, Col: -4}, p.Sub(gridgraph.Point{Row: 1, Col: 2}))
	assert.Equal(t, gridgraph.Point{Row: 9, Col: -6}, p.Scale(3))
	assert.Equal(t, 7, p.Manhattan(gridgraph.Point{Row: 0, Col: 2}))
	assert.Equal(t, "(3,-2)", p.String())
}

func TestTranspose(t *testing.T) {
	got := gridgraph.Transpose([]string{"123 ", " 45", "  6"})
	assert.Equal(t, []string{"1  ", "24 ", "356", "   "}, got)
	assert.True(t, gridgraph.IsBlank(got[3]))
	assert.False(t, gridgraph.IsBlank(got[0]))
	assert.Empty(t, gridgraph.Transpose(nil))
}
