// Package minmax compares pairs of ordered values.
package minmax

import "golang.org/x/exp/constraints"

// Min returns the smallest of a and b
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the largest of a and b
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
