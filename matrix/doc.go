// SPDX-License-Identifier: MIT
// Package matrix solves small integer linear systems A·x = b exactly.
//
// Purpose:
//
//   - Reduce brings [A | b] to reduced row echelon form over math/big
//     rationals, so no rounding ever creeps into pivot decisions.
//   - The result is re-scaled to integers: for every pivot row r
//     Scale[r]·x[Pivots[r]] = RHS[r] − Σ_k Coef[r][k]·x[Free[k]].
//     Callers enumerate the free variables and recover the pivot ones with
//     SolveInto, which also reports whether they came out integral.
//
// Notes:
//
//   - Pivot search scans columns left to right and rows top to bottom,
//     so identical inputs always produce identical echelon forms.
//   - Complexity: O(m·n·min(m, n)) rational operations for an m×n system.
package matrix
