package day05

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
)

const sample = `3-5
10-14
16-20
12-18

1
5
8
11
17
32
`

func TestSample(t *testing.T) {
	one, err := Solution{}.PartOne(sample)
	require.NoError(t, err)
	assert.EqualValues(t, 3, one)

	two, err := Solution{}.PartTwo(sample)
	require.NoError(t, err)
	assert.EqualValues(t, 14, two)
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		in   []Span
		want []Span
	}{
		{"empty", nil, nil},
		{"overlap", []Span{{10, 14}, {12, 18}, {3, 5}, {16, 20}}, []Span{{3, 5}, {10, 20}}},
		{"touching ends", []Span{{1, 3}, {3, 4}}, []Span{{1, 4}}},
		{"adjacent stay apart", []Span{{1, 3}, {4, 5}}, []Span{{1, 3}, {4, 5}}},
		{"contained", []Span{{1, 10}, {2, 3}}, []Span{{1, 10}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Merge(tc.in))
		})
	}
}

func TestMalformed(t *testing.T) {
	for _, in := range []string{"", "3-x\n\n1\n", "5-3\n\n1\n", "1-2\n\nx\n", "1\n\n2\n\n3\n"} {
		_, err := Solution{}.PartOne(in)
		require.ErrorIs(t, err, puzzle.ErrMalformedInput, in)
	}
}
