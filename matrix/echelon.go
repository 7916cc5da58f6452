// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/big"
)

// Echelon is the integer-scaled reduced row echelon form of A·x = b.
// Row r determines pivot variable Pivots[r]:
//
//	Scale[r]·x[Pivots[r]] = RHS[r] − Σ_k Coef[r][k]·x[Free[k]]
//
// Scale entries are strictly positive.
type Echelon struct {
	Cols   int       // number of unknowns
	Pivots []int     // pivot column of each non-zero row
	Free   []int     // columns without a pivot, ascending
	Scale  []int64   // per-row multiplier of the pivot variable
	RHS    []int64   // per-row scaled right-hand side
	Coef   [][]int64 // Coef[r][k] multiplies x[Free[k]] in row r
}

// Reduce computes the reduced row echelon form of [a | b].
//
// Errors:
//   - ErrBadShape          for empty or ragged a.
//   - ErrDimensionMismatch when len(b) != len(a).
//   - ErrInconsistent      when the system has no solution.
//   - ErrOverflow          when scaled rows leave the int64 range.
func Reduce(a [][]int64, b []int64) (*Echelon, error) {
	// 1. Validate shape.
	if len(a) == 0 || len(a[0]) == 0 {
		return nil, ErrBadShape
	}
	m, n := len(a), len(a[0])
	for _, row := range a {
		if len(row) != n {
			return nil, ErrBadShape
		}
	}
	if len(b) != m {
		return nil, fmt.Errorf("%w: %d rows, %d right-hand sides", ErrDimensionMismatch, m, len(b))
	}

	// 2. Build the augmented rational matrix.
	aug := make([][]*big.Rat, m)
	for r := 0; r < m; r++ {
		aug[r] = make([]*big.Rat, n+1)
		for c := 0; c < n; c++ {
			aug[r][c] = new(big.Rat).SetInt64(a[r][c])
		}
		aug[r][n] = new(big.Rat).SetInt64(b[r])
	}

	// 3. Gauss-Jordan elimination with first-non-zero pivoting.
	var pivots []int
	row := 0
	for col := 0; col < n && row < m; col++ {
		sel := -1
		for r := row; r < m; r++ {
			if aug[r][col].Sign() != 0 {
				sel = r
				break
			}
		}
		if sel < 0 {
			continue
		}
		aug[row], aug[sel] = aug[sel], aug[row]

		inv := new(big.Rat).Inv(aug[row][col])
		for c := col; c <= n; c++ {
			aug[row][c].Mul(aug[row][c], inv)
		}
		tmp := new(big.Rat)
		for r := 0; r < m; r++ {
			if r == row || aug[r][col].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(aug[r][col])
			for c := col; c <= n; c++ {
				tmp.Mul(f, aug[row][c])
				aug[r][c].Sub(aug[r][c], tmp)
			}
		}
		pivots = append(pivots, col)
		row++
	}

	// 4. Remaining rows are zero on the left; their RHS must be zero too.
	for r := row; r < m; r++ {
		if aug[r][n].Sign() != 0 {
			return nil, ErrInconsistent
		}
	}

	// 5. Collect free columns.
	isPivot := make([]bool, n)
	for _, p := range pivots {
		isPivot[p] = true
	}
	var free []int
	for c := 0; c < n; c++ {
		if !isPivot[c] {
			free = append(free, c)
		}
	}

	// 6. Scale each pivot row to integers by the LCM of its denominators.
	e := &Echelon{
		Cols:   n,
		Pivots: pivots,
		Free:   free,
		Scale:  make([]int64, len(pivots)),
		RHS:    make([]int64, len(pivots)),
		Coef:   make([][]int64, len(pivots)),
	}
	for r := range pivots {
		lcm := rowLCM(aug[r])
		if !lcm.IsInt64() {
			return nil, ErrOverflow
		}
		e.Scale[r] = lcm.Int64()

		rhs, err := scaleRat(aug[r][n], lcm)
		if err != nil {
			return nil, err
		}
		e.RHS[r] = rhs

		e.Coef[r] = make([]int64, len(free))
		for k, f := range free {
			v, err := scaleRat(aug[r][f], lcm)
			if err != nil {
				return nil, err
			}
			e.Coef[r][k] = v
		}
	}

	return e, nil
}

// rowLCM returns the least common multiple of all denominators in row.
func rowLCM(row []*big.Rat) *big.Int {
	lcm := big.NewInt(1)
	gcd := new(big.Int)
	for _, q := range row {
		d := q.Denom()
		gcd.GCD(nil, nil, lcm, d)
		lcm.Mul(lcm, new(big.Int).Quo(d, gcd))
	}
	return lcm
}

// scaleRat returns q·k, which must be integral since k is a multiple of q's denominator.
func scaleRat(q *big.Rat, k *big.Int) (int64, error) {
	v := new(big.Int).Mul(q.Num(), k)
	v.Quo(v, q.Denom())
	if !v.IsInt64() {
		return 0, ErrOverflow
	}
	return v.Int64(), nil
}

// SolveInto fills x (length Cols) from the free-variable assignment free
// (length len(Free)). It reports false when some pivot variable is not an
// integer; x is then partially written and must not be used.
func (e *Echelon) SolveInto(free, x []int64) bool {
	for k, f := range e.Free {
		x[f] = free[k]
	}
	for r, p := range e.Pivots {
		v := e.RHS[r]
		for k, fv := range free {
			v -= e.Coef[r][k] * fv
		}
		if v%e.Scale[r] != 0 {
			return false
		}
		x[p] = v / e.Scale[r]
	}
	return true
}

// Solve is SolveInto with argument checking and a fresh result slice.
// The boolean is false when the assignment yields a non-integral solution.
func (e *Echelon) Solve(free []int64) ([]int64, bool, error) {
	if len(free) != len(e.Free) {
		return nil, false, fmt.Errorf("%w: %d free values for %d free variables",
			ErrDimensionMismatch, len(free), len(e.Free))
	}
	x := make([]int64, e.Cols)
	if !e.SolveInto(free, x) {
		return nil, false, nil
	}
	return x, true, nil
}
