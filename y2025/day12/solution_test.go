package day12

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
)

const sample = `0:
###
##.
##.

1:
###
##.
.##

2:
.##
###
##.

3:
##.
###
##.

4:
###
#..
###

5:
###
.#.
###

4x4: 0 0 0 0 2 0
12x5: 1 0 1 0 2 2
12x5: 1 0 1 0 3 2
`

func TestSample(t *testing.T) {
	one, err := Solution{}.PartOne(sample)
	require.NoError(t, err)
	assert.EqualValues(t, 3, one)

	_, err = Solution{}.PartTwo(sample)
	require.ErrorIs(t, err, puzzle.ErrNoSecondPart)
}

func TestParse(t *testing.T) {
	shapes, regions, err := parse(sample)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 7, 7, 7, 7, 7}, shapes)
	require.Len(t, regions, 3)
	assert.Equal(t, Region{Width: 4, Height: 4, Counts: []int{0, 0, 0, 0, 2, 0}}, regions[0])
}

func TestTightRegionDoesNotFit(t *testing.T) {
	// Two 7-cell shapes in a 14-cell region leave no slack.
	in := "0:\n###\n##.\n##.\n\n2x7: 2\n"
	one, err := Solution{}.PartOne(in)
	require.NoError(t, err)
	assert.Zero(t, one)
}

func TestMalformed(t *testing.T) {
	tests := []string{
		"4x4: 1\n",
		"0\n###\n\n4x4: 1\n",
		"0:\n###\n\n4by4: 1\n",
		"0:\n###\n\n4x4: 1 1\n",
		"0:\n###\n\n4x4: a\n",
	}
	for _, in := range tests {
		_, err := Solution{}.PartOne(in)
		require.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}
