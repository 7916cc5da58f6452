package day10

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
)

const sample = `[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
[...#.] (0,2,3,4) (2,3) (0,4) (0,1,2) (1,2,3,4) {7,5,12,7,2}
[.###.#] (0,1,2,3,4) (0,3,4) (0,1,2,4,5) (1,2) {10,11,11,5,10,5}
`

func TestSample(t *testing.T) {
	one, err := Solution{}.PartOne(sample)
	require.NoError(t, err)
	assert.EqualValues(t, 7, one)

	two, err := Solution{}.PartTwo(sample)
	require.NoError(t, err)
	assert.EqualValues(t, 33, two)
}

func TestPerMachine(t *testing.T) {
	machines, err := parse(sample)
	require.NoError(t, err)
	require.Len(t, machines, 3)

	toggles := []int64{2, 3, 2}
	increments := []int64{10, 12, 11}
	for i, m := range machines {
		n, err := m.FewestToggles()
		require.NoError(t, err)
		assert.Equal(t, toggles[i], n, "machine %d", i+1)

		n, err = m.FewestIncrements()
		require.NoError(t, err)
		assert.Equal(t, increments[i], n, "machine %d", i+1)
	}
}

func TestParseMachine(t *testing.T) {
	m, err := parseMachine("[.##.] (3) (1,3) {3,5,4,7}")
	require.NoError(t, err)
	assert.Equal(t, uint64(0b0110), m.Lights)
	assert.Equal(t, [][]int{{3}, {1, 3}}, m.Buttons)
	assert.Equal(t, []int64{3, 5, 4, 7}, m.Joltage)
}

func TestUnreachable(t *testing.T) {
	// The only button touches light 0, never light 1.
	_, err := Solution{}.PartOne("[.#] (0) {1,1}\n")
	require.ErrorIs(t, err, errUnreachable)

	_, err = Solution{}.PartTwo("[.#] (0) {1,1}\n")
	require.ErrorIs(t, err, errUnreachable)
}

func TestMalformed(t *testing.T) {
	tests := []string{
		"[.##.]\n",
		".##. (0) {1}\n",
		"[.x] (0) {1,1}\n",
		"[..] (0 {1,1}\n",
		"[..] (5) {1,1}\n",
		"[..] (0) {1,a}\n",
	}
	for _, in := range tests {
		_, err := Solution{}.PartOne(in)
		require.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}
