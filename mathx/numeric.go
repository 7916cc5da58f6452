package mathx

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

// ErrNotDigit is returned by Digits for any byte outside '0'..'9'.
var ErrNotDigit = errors.New("mathx: not a decimal digit")

// GCD returns the greatest common divisor of a and b.
// When either argument is zero the other one (the larger of the two) is returned.
func GCD[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return max(a, b)
	}
	for a%b != 0 {
		a, b = b, a%b
	}
	return b
}

// LCM returns a*b/GCD(a, b). LCM(0, 0) is 0.
func LCM[T constraints.Integer](a, b T) T {
	g := GCD(a, b)
	if g == 0 {
		return 0
	}
	return a / g * b
}

// LCMAll folds LCM over values. It returns 0 for an empty list.
func LCMAll[T constraints.Integer](values ...T) T {
	if len(values) == 0 {
		return 0
	}
	acc := values[0]
	for _, v := range values[1:] {
		acc = LCM(acc, v)
	}
	return acc
}

// GCDFloat is GCD over float64 values using math.Mod.
func GCDFloat(a, b float64) float64 {
	if a == 0 || b == 0 {
		return math.Max(a, b)
	}
	for math.Mod(a, b) != 0 {
		a, b = b, math.Mod(a, b)
	}
	return b
}

// LCMFloat is LCM over float64 values.
func LCMFloat(a, b float64) float64 {
	g := GCDFloat(a, b)
	if g == 0 {
		return 0
	}
	return a * b / g
}

// DivMod returns the truncated quotient and remainder of a/b, matching Go's / and %.
func DivMod[T constraints.Integer](a, b T) (q, r T) {
	return a / b, a % b
}

// Mod returns x modulo m in the range [0, m) for positive m.
func Mod[T constraints.Signed](x, m T) T {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

// Abs returns |x|.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Manhattan2 is the taxicab distance between (ax, ay) and (bx, by).
func Manhattan2[T constraints.Signed](ax, ay, bx, by T) T {
	return Abs(ax-bx) + Abs(ay-by)
}

// Manhattan3 is the taxicab distance between two points in three dimensions.
func Manhattan3[T constraints.Signed](ax, ay, az, bx, by, bz T) T {
	return Abs(ax-bx) + Abs(ay-by) + Abs(az-bz)
}

// Digits converts a string of ASCII digits into their integer values.
func Digits(s string) ([]int, error) {
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, ErrNotDigit
		}
		out[i] = int(c - '0')
	}
	return out, nil
}
