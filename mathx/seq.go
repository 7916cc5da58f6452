package mathx

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Range lazily yields start, start+1, …, end-1.
// An empty sequence is produced when start >= end.
func Range[T constraints.Integer](start, end T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for ; start < end; start++ {
			if !yield(start) {
				return
			}
		}
	}
}

// Cumulative applies apply to a running accumulator seeded with seed and
// yields the accumulator after every element of seq.
//
//	Cumulative([1 2 3], 0, +) → 1 3 6
func Cumulative[T, A any](seq iter.Seq[T], seed A, apply func(A, T) A) iter.Seq[A] {
	return func(yield func(A) bool) {
		acc := seed
		for item := range seq {
			acc = apply(acc, item)
			if !yield(acc) {
				return
			}
		}
	}
}

// CountFunc consumes seq and reports how many elements satisfy keep.
func CountFunc[T any](seq iter.Seq[T], keep func(T) bool) int {
	n := 0
	for v := range seq {
		if keep(v) {
			n++
		}
	}
	return n
}

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
