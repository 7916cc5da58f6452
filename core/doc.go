// Package core provides a small, thread-safe in-memory Graph keyed by
// string vertex IDs, used to model the device wiring and other
// name-to-name relations found in puzzle inputs.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected).
//     Undirected graphs mirror every edge in adjacency[to][from].
//   - Self-loops (WithLoops); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//   - Deterministic iteration: Vertices() and NeighborIDs() return sorted IDs.
//   - Idempotent insertion: re-adding a vertex or an existing edge is a no-op.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
//
// Complexity: AddVertex, AddEdge, HasVertex, HasEdge are O(1) amortized;
// NeighborIDs is O(d log d); Vertices is O(V log V).
package core
