// Package gcd reduces unsigned integers to their greatest common divisor.
package gcd

import "golang.org/x/exp/constraints"

// Pair returns the greatest common divisor of n and m using the Euclidean
// algorithm.
//
// Both operands must be non-zero. A zero operand is a caller bug and panics.
func Pair[T constraints.Unsigned](n, m T) T {
	if n == 0 || m == 0 {
		panic("gcd: Pair requires non-zero operands")
	}

	for m != 0 {
		if m < n {
			n, m = m, n
		}
		m %= n
	}
	return n
}

// Fold reduces values left to right with Pair.
//
// values must be non-empty; an empty slice panics. A single value is
// returned unchanged.
func Fold[T constraints.Unsigned](values []T) T {
	if len(values) == 0 {
		panic("gcd: Fold requires at least one value")
	}

	acc := values[0]
	for _, v := range values[1:] {
		acc = Pair(acc, v)
	}
	return acc
}
