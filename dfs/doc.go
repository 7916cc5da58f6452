// Package dfs provides depth-first algorithms on directed acyclic graphs:
// topological ordering and memoised path counting between vertices,
// optionally constrained to pass through a set of waypoints.
//
// Complexity:
//
//   - TopologicalSort: O(V + E) time, O(V) memory.
//   - CountPaths:      O(V + E) time per distinct target, O(V) memory.
//   - CountPathsVia:   O(k!·(V + E)) for k waypoints.
package dfs
