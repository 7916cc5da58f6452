package kruskal

import (
	"sort"
)

// DisjointSet partitions a set of elements into disjoint subsets.
// The zero value is not usable; call NewDisjointSet.
type DisjointSet[T comparable] struct {
	parent map[T]T
	rank   map[T]int
	size   map[T]int // valid for roots only
	sets   int
}

// NewDisjointSet returns a DisjointSet holding each element in its own set.
func NewDisjointSet[T comparable](elems ...T) *DisjointSet[T] {
	ds := &DisjointSet[T]{
		parent: make(map[T]T, len(elems)),
		rank:   make(map[T]int, len(elems)),
		size:   make(map[T]int, len(elems)),
	}
	for _, e := range elems {
		ds.Add(e)
	}
	return ds
}

// Add inserts x as a singleton set. Adding an existing element is a no-op.
func (ds *DisjointSet[T]) Add(x T) {
	if _, ok := ds.parent[x]; ok {
		return
	}
	ds.parent[x] = x
	ds.rank[x] = 0
	ds.size[x] = 1
	ds.sets++
}

// Contains reports whether x was added.
func (ds *DisjointSet[T]) Contains(x T) bool {
	_, ok := ds.parent[x]
	return ok
}

// Find returns the representative of x's set. ok is false for unknown x.
func (ds *DisjointSet[T]) Find(x T) (root T, ok bool) {
	if _, ok = ds.parent[x]; !ok {
		return root, false
	}
	// Walk up until the root, halving the path as we go.
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}
	return x, true
}

// Union merges the sets of a and b. It reports whether two distinct sets
// were merged; unknown elements are never merged.
func (ds *DisjointSet[T]) Union(a, b T) bool {
	ra, okA := ds.Find(a)
	rb, okB := ds.Find(b)
	if !okA || !okB || ra == rb {
		return false
	}
	// Attach smaller-rank tree under larger-rank root.
	if ds.rank[ra] < ds.rank[rb] {
		ra, rb = rb, ra
	}
	ds.parent[rb] = ra
	if ds.rank[ra] == ds.rank[rb] {
		ds.rank[ra]++
	}
	ds.size[ra] += ds.size[rb]
	delete(ds.size, rb)
	ds.sets--
	return true
}

// Connected reports whether a and b are in the same set.
func (ds *DisjointSet[T]) Connected(a, b T) bool {
	ra, okA := ds.Find(a)
	rb, okB := ds.Find(b)
	return okA && okB && ra == rb
}

// Size returns the number of elements in x's set, or 0 for unknown x.
func (ds *DisjointSet[T]) Size(x T) int {
	r, ok := ds.Find(x)
	if !ok {
		return 0
	}
	return ds.size[r]
}

// Sets returns the current number of disjoint sets.
func (ds *DisjointSet[T]) Sets() int {
	return ds.sets
}

// SetSizes returns the size of every set, largest first.
func (ds *DisjointSet[T]) SetSizes() []int {
	out := make([]int, 0, len(ds.size))
	for _, n := range ds.size {
		out = append(out, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}
