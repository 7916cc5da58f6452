package day07

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/gridgraph"
	"github.com/katalvlaran/advent/puzzle"
)

const sample = `.......S.......
...............
.......^.......
...............
......^.^......
...............
.....^.^.^.....
...............
....^.^...^....
...............
...^.^...^.^...
...............
..^...^.....^..
...............
.^.^.^.^.^...^.
...............
`

func TestSample(t *testing.T) {
	one, err := Solution{}.PartOne(sample)
	require.NoError(t, err)
	assert.EqualValues(t, 21, one)

	two, err := Solution{}.PartTwo(sample)
	require.NoError(t, err)
	assert.EqualValues(t, 40, two)
}

func TestNoSplitters(t *testing.T) {
	in := ".S.\n...\n...\n"
	one, err := Solution{}.PartOne(in)
	require.NoError(t, err)
	assert.Zero(t, one)

	two, err := Solution{}.PartTwo(in)
	require.NoError(t, err)
	assert.EqualValues(t, 1, two)
}

func TestEdgeSplitter(t *testing.T) {
	// The left half of the split leaves the manifold but is still a timeline.
	in := "S.\n^.\n..\n"
	one, err := Solution{}.PartOne(in)
	require.NoError(t, err)
	assert.EqualValues(t, 1, one)

	two, err := Solution{}.PartTwo(in)
	require.NoError(t, err)
	assert.EqualValues(t, 2, two)
}

func TestMalformed(t *testing.T) {
	_, err := Solution{}.PartOne("...\n...\n")
	require.ErrorIs(t, err, puzzle.ErrMalformedInput)
	require.ErrorIs(t, err, gridgraph.ErrCellNotFound)
}
