// Package bfs provides breadth-first search over an implicit state space,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore states in non-decreasing distance (step count) from a start state.
//   - States are any comparable type; successors come from a caller-supplied
//     Next function, so grids, bit masks and graph vertices are all searched
//     the same way. Graph adapts a *core.Graph into a Next function.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from state → distance (steps) from start
//   - Parent: map from state → its predecessor in the BFS tree
//   - Supports an OnVisit hook that may abort with an error, or stop the
//     search early and successfully by returning ErrStop.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	Successors are enqueued in the order Next returns them, so the visit
//	sequence is reproducible whenever Next is.
//
// Complexity (V = reachable states, E = transitions)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.Search(start, next,
//	    bfs.WithContext[state](ctx),
//	    bfs.WithMaxDepth[state](3),
//	    bfs.WithOnVisit(func(s state, depth int) error {
//	        if s == goal {
//	            return bfs.ErrStop
//	        }
//	        return nil
//	    }),
//	)
//
// Errors
//
//   - ErrNilNext          if next is nil.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - ErrNotReached       from Result.PathTo for unreached states.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
