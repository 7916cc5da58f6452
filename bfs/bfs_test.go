package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/bfs"
	"github.com/katalvlaran/advent/core"
)

// line returns a successor function over 0..n-1 where i links to i+1.
func line(n int) func(int) []int {
	return func(i int) []int {
		if i+1 < n {
			return []int{i + 1}
		}
		return nil
	}
}

// TestSearch_Errors verifies that invalid inputs and options are rejected.
func TestSearch_Errors(t *testing.T) {
	_, err := bfs.Search[int](0, nil)
	require.ErrorIs(t, err, bfs.ErrNilNext)

	_, err = bfs.Search(0, line(3), bfs.WithMaxDepth[int](-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestSearch_SingleState covers a state with no successors.
func TestSearch_SingleState(t *testing.T) {
	res, err := bfs.Search("A", func(string) []string { return nil })
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])
	assert.Empty(t, res.Parent)
}

// TestSearch_CycleAndDepths covers a 4-cycle and checks layering.
func TestSearch_CycleAndDepths(t *testing.T) {
	ring := map[string][]string{
		"A": {"B", "D"},
		"B": {"A", "C"},
		"C": {"B", "D"},
		"D": {"C", "A"},
	}
	res, err := bfs.Search("A", func(s string) []string { return ring[s] })
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)
	assert.Equal(t, "B", res.Parent["C"])
}

// TestSearch_MaxDepth verifies WithMaxDepth for positive, zero (no limit), and large depths.
func TestSearch_MaxDepth(t *testing.T) {
	res, err := bfs.Search(0, line(5), bfs.WithMaxDepth[int](1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)

	res, err = bfs.Search(0, line(5), bfs.WithMaxDepth[int](0))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Order)

	res, err = bfs.Search(0, line(5), bfs.WithMaxDepth[int](10))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Order)
}

// TestSearch_Stop shows that ErrStop ends the search without an error.
func TestSearch_Stop(t *testing.T) {
	res, err := bfs.Search(0, line(100), bfs.WithOnVisit(func(s, depth int) error {
		if s == 3 {
			return bfs.ErrStop
		}
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	assert.True(t, res.Reached(3))
	assert.Equal(t, 3, res.Depth[3])
}

// TestSearch_HookError propagates arbitrary hook errors.
func TestSearch_HookError(t *testing.T) {
	boom := errors.New("boom")
	_, err := bfs.Search(0, line(10), bfs.WithOnVisit(func(s, _ int) error {
		if s == 2 {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "OnVisit error at 2")
}

// TestSearch_PathTo covers trivial, interior and unreachable targets.
func TestSearch_PathTo(t *testing.T) {
	res, err := bfs.Search(0, line(4))
	require.NoError(t, err)

	path, err := res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)

	path, err = res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)

	_, err = res.PathTo(42)
	require.ErrorIs(t, err, bfs.ErrNotReached)
	assert.False(t, res.Reached(42))
}

// TestSearch_Cancellation verifies that a cancelled context halts BFS promptly.
func TestSearch_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	_, err := bfs.Search(0, line(100), bfs.WithContext[int](ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestGraph_Adapter runs BFS over a core.Graph through the Graph adapter.
func TestGraph_Adapter(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("X", "Y"))
	require.NoError(t, g.AddEdge("Y", "Z"))
	require.NoError(t, g.AddEdge("P", "Q"))

	res, err := bfs.Search("X", bfs.Graph(g))
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y", "Z"}, res.Order)
	assert.False(t, res.Reached("P"))

	// unknown start: no successors, only itself
	res, err = bfs.Search("missing", bfs.Graph(g))
	require.NoError(t, err)
	assert.Equal(t, []string{"missing"}, res.Order)
}
