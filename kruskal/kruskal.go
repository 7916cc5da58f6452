package kruskal

import (
	"errors"
	"fmt"
	"sort"
)

// Kruskal computes a minimum spanning tree over vertices using edges.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrNoVertices    : if vertices is empty.
//   - ErrUnknownVertex : if an edge endpoint is not listed in vertices.
//   - ErrDisconnected  : if the processed edges never connect all vertices.
//   - any error other than ErrStop returned by the OnEdge hook.
//
// Steps:
//  1. Validate inputs and seed one singleton set per vertex.
//  2. Copy and stable-sort edges by ascending Weight (input order breaks ties).
//  3. For each edge, union its endpoints; merged edges join the tree.
//  4. Invoke OnEdge after every edge; ErrStop ends the run successfully.
//  5. Stop once the tree has |V|-1 edges; fewer than that → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal[T comparable](vertices []T, edges []Edge[T], opts ...Option[T]) ([]Edge[T], float64, error) {
	// 1. Validate
	if len(vertices) == 0 {
		return nil, 0, ErrNoVertices
	}
	var o Options[T]
	for _, opt := range opts {
		opt(&o)
	}
	ds := NewDisjointSet(vertices...)
	for _, e := range edges {
		if !ds.Contains(e.From) || !ds.Contains(e.To) {
			return nil, 0, fmt.Errorf("%w: %v-%v", ErrUnknownVertex, e.From, e.To)
		}
	}
	numVerts := ds.Sets()
	if numVerts == 1 {
		return []Edge[T]{}, 0, nil
	}

	// 2. Sort a copy so callers keep their order.
	sorted := append([]Edge[T](nil), edges...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	// 3-5. Build the tree.
	var (
		mst         []Edge[T]
		totalWeight float64
	)
	for i, e := range sorted {
		merged := ds.Union(e.From, e.To)
		if merged {
			mst = append(mst, e)
			totalWeight += e.Weight
		}
		if o.OnEdge != nil {
			if err := o.OnEdge(i+1, e, merged, ds); err != nil {
				if errors.Is(err, ErrStop) {
					return mst, totalWeight, nil
				}
				return nil, 0, err
			}
		}
		if len(mst) == numVerts-1 {
			return mst, totalWeight, nil
		}
	}

	return nil, 0, ErrDisconnected
}
