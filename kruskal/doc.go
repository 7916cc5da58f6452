// Package kruskal provides a generic disjoint-set (union-find) structure and
// Kruskal's minimum-spanning-forest algorithm built on it.
//
// What:
//
//   - DisjointSet[T] with union by rank and iterative path compression,
//     tracking the size of every set and the number of sets.
//   - Kruskal[T] sorts edges by ascending weight (stable, so equal weights keep
//     their input order) and greedily accepts edges joining distinct sets.
//     A WithOnEdge hook observes every processed edge together with the live
//     DisjointSet, which lets callers inspect the forest mid-run or stop early.
//
// Errors:
//
//   - ErrNoVertices   : the vertex list is empty.
//   - ErrUnknownVertex: an edge endpoint is not in the vertex list.
//   - ErrDisconnected : the edges never join all vertices into one tree.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
package kruskal
