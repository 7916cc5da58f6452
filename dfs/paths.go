package dfs

import (
	"fmt"

	"github.com/katalvlaran/advent/core"
)

// pathCounter memoises, for one fixed target, the number of directed paths
// from each explored vertex to that target.
type pathCounter struct {
	graph  *core.Graph
	target string
	memo   map[string]int64
	state  map[string]int
}

// CountPaths returns the number of distinct directed paths from → to.
// A path from a vertex to itself counts once (the empty path).
//
// Returns ErrGraphNil, ErrNotDirected, a wrapped core.ErrVertexNotFound for
// unknown endpoints, or ErrCycleDetected when a cycle is reachable from from.
func CountPaths(g *core.Graph, from, to string) (int64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if !g.Directed() {
		return 0, ErrNotDirected
	}
	for _, id := range []string{from, to} {
		if !g.HasVertex(id) {
			return 0, fmt.Errorf("dfs: %w: %q", core.ErrVertexNotFound, id)
		}
	}
	pc := &pathCounter{
		graph:  g,
		target: to,
		memo:   make(map[string]int64),
		state:  make(map[string]int),
	}

	return pc.count(from)
}

// count returns the number of paths from id to the target.
func (pc *pathCounter) count(id string) (int64, error) {
	if id == pc.target {
		return 1, nil
	}
	switch pc.state[id] {
	case Gray:
		return 0, fmt.Errorf("%w: through %q", ErrCycleDetected, id)
	case Black:
		return pc.memo[id], nil
	}
	pc.state[id] = Gray
	nbrs, err := pc.graph.NeighborIDs(id)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, nbr := range nbrs {
		n, err := pc.count(nbr)
		if err != nil {
			return 0, err
		}
		total += n
	}
	pc.state[id] = Black
	pc.memo[id] = total

	return total, nil
}

// CountPathsVia returns the number of directed paths from → to that pass
// through every vertex in via. Waypoints may be visited in any order; in an
// acyclic graph each path fixes one order, so the total is the sum over all
// orderings of the product of per-segment path counts.
// With no waypoints it is CountPaths.
func CountPathsVia(g *core.Graph, from, to string, via ...string) (int64, error) {
	if len(via) == 0 {
		return CountPaths(g, from, to)
	}
	var total int64
	var walkErr error
	permute(append([]string(nil), via...), 0, func(order []string) bool {
		stops := make([]string, 0, len(order)+2)
		stops = append(stops, from)
		stops = append(stops, order...)
		stops = append(stops, to)

		product := int64(1)
		for i := 0; i+1 < len(stops) && product != 0; i++ {
			n, err := CountPaths(g, stops[i], stops[i+1])
			if err != nil {
				walkErr = err
				return false
			}
			product *= n
		}
		total += product
		return true
	})
	if walkErr != nil {
		return 0, walkErr
	}

	return total, nil
}

// permute calls visit for every ordering of items[k:] with items[:k] fixed.
// It stops as soon as visit returns false.
func permute(items []string, k int, visit func([]string) bool) bool {
	if k == len(items) {
		return visit(items)
	}
	for i := k; i < len(items); i++ {
		items[k], items[i] = items[i], items[k]
		if !permute(items, k+1, visit) {
			return false
		}
		items[k], items[i] = items[i], items[k]
	}
	return true
}
