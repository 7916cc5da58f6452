// Package gridgraph treats a rectangular block of text as a grid of byte
// cells addressed by Point{Row, Col}, and offers the neighbourhood queries
// the puzzle solutions are built on.
//
// What:
//
//   - Grid wraps a rectangular []byte-per-row copy of its input.
//   - Neighbors walks the 4- or 8-neighbourhood (Conn4 / Conn8) of a cell,
//     clipped to the grid boundaries.
//   - Find / FindAll / Count locate cells by value in row-major order.
//   - Transpose turns ragged lines into columns, padding with spaces.
//
// Complexity:
//
//   - Parse, Clone, FindAll, Count: O(W×H).
//   - At, Set, InBounds:             O(1).
//   - Neighbors:                     O(d), d = 4 or 8.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCellNotFound: Find could not locate the requested value.
package gridgraph
