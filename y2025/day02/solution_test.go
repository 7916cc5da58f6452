package day02

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
)

const sample = "11-22,95-115,998-1012,1188511880-1188511890,222220-222224," +
	"1698522-1698528,446443-446449,38593856-38593862,565653-565659," +
	"824824821-824824827,2121212118-2121212124\n"

func TestSample(t *testing.T) {
	one, err := Solution{}.PartOne(sample)
	require.NoError(t, err)
	assert.EqualValues(t, 1227775554, one)

	two, err := Solution{}.PartTwo(sample)
	require.NoError(t, err)
	assert.EqualValues(t, 4174379265, two)
}

func TestRepeating(t *testing.T) {
	tests := []struct {
		id       string
		minBlock int
		want     bool
	}{
		{"11", 1, true},
		{"55", 1, true},
		{"6464", 2, true},
		{"123123", 3, true},
		{"111", 2, false},
		{"111", 1, true},
		{"824824824", 5, false},
		{"824824824", 1, true},
		{"1010", 1, true},
		{"1011", 1, false},
		{"7", 1, false},
	}
	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			assert.Equal(t, tc.want, Repeating(tc.id, tc.minBlock))
		})
	}
}

func TestMalformed(t *testing.T) {
	for _, in := range []string{"11", "a-5", "9-3"} {
		_, err := Solution{}.PartOne(in)
		require.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}
