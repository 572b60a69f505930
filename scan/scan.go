// Package scan finds extremes in sequences of signed integers.
package scan

import (
	"github.com/johnstarich/go/intutil/internal/minmax"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// ErrEmpty is returned by Max when there are no values to compare
var ErrEmpty = errors.New("no values")

// FindMax returns the largest of the first 'count' values.
//
// An empty scan (count == 0 or no values) returns 0, so a 0 result does not mean 0 was present.
// A count beyond len(values) is clamped to len(values).
func FindMax[T constraints.Signed](values []T, count uint) T {
	count = minmax.Min(count, uint(len(values)))
	if count == 0 {
		return 0
	}
	largest := values[0]
	for _, v := range values[1:count] {
		largest = minmax.Max(largest, v)
	}
	return largest
}

// Max returns the largest of values or ErrEmpty if there are none
func Max[T constraints.Signed](values []T) (T, error) {
	if len(values) == 0 {
		return 0, errors.WithStack(ErrEmpty)
	}
	return FindMax(values, uint(len(values))), nil
}
