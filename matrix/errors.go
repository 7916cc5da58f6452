// SPDX-License-Identifier: MIT

package matrix

import "errors"

var (
	// ErrBadShape is returned when the coefficient matrix has no rows or no columns,
	// or its rows differ in length.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates len(b) differs from the number of rows of A,
	// or a free-variable vector has the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInconsistent signals a system with no solution (a zero row with non-zero RHS).
	ErrInconsistent = errors.New("matrix: inconsistent system")

	// ErrOverflow signals that the integer re-scaling does not fit in int64.
	ErrOverflow = errors.New("matrix: integer overflow")
)
