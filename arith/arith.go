// Package arith adds and subtracts signed integers of any width.
//
// Add and Subtract wrap around on overflow, matching two's-complement machine arithmetic.
// AddChecked and SubtractChecked report overflow instead.
package arith

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// ErrOverflow is returned when a checked operation's result does not fit in its type
var ErrOverflow = errors.New("integer overflow")

// Add returns a + b
func Add[T constraints.Signed](a, b T) T {
	return a + b
}

// Subtract returns a - b
func Subtract[T constraints.Signed](a, b T) T {
	return a - b
}

// AddChecked returns a + b, or an error wrapping ErrOverflow if the sum wrapped around
func AddChecked[T constraints.Signed](a, b T) (T, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return sum, errors.Wrapf(ErrOverflow, "%d + %d", a, b)
	}
	return sum, nil
}

// SubtractChecked returns a - b, or an error wrapping ErrOverflow if the difference wrapped around
func SubtractChecked[T constraints.Signed](a, b T) (T, error) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return diff, errors.Wrapf(ErrOverflow, "%d - %d", a, b)
	}
	return diff, nil
}
