package day04

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/gridgraph"
	"github.com/katalvlaran/advent/puzzle"
)

const sample = `..@@.@@@@.
@@@.@.@.@@
@@@@@.@.@@
@.@@@@..@.
@@.@@@@.@@
.@@@@@@@.@
.@.@.@.@@@
@.@@@.@@@@
.@@@@@@@@.
@.@.@@@.@.
`

func TestSample(t *testing.T) {
	one, err := Solution{}.PartOne(sample)
	require.NoError(t, err)
	assert.EqualValues(t, 13, one)

	two, err := Solution{}.PartTwo(sample)
	require.NoError(t, err)
	assert.EqualValues(t, 43, two)
}

func TestSolidBlock(t *testing.T) {
	// Corners have three neighbours and go first; the rest follows.
	in := "@@@\n@@@\n@@@\n"
	one, err := Solution{}.PartOne(in)
	require.NoError(t, err)
	assert.EqualValues(t, 4, one)

	two, err := Solution{}.PartTwo(in)
	require.NoError(t, err)
	assert.EqualValues(t, 9, two)
}

func TestMalformed(t *testing.T) {
	_, err := Solution{}.PartOne("@@\n@\n")
	require.ErrorIs(t, err, puzzle.ErrMalformedInput)
	require.ErrorIs(t, err, gridgraph.ErrNonRectangular)
}
