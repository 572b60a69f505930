package scan

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestFindMax(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		description string
		values      []int
		count       uint
		expect      int
	}{
		{
			description: "empty array returns zero",
			values:      []int{},
			count:       0,
			expect:      0,
		},
		{
			description: "nil array returns zero",
			values:      nil,
			count:       0,
			expect:      0,
		},
		{
			description: "single element",
			values:      []int{10},
			count:       1,
			expect:      10,
		},
		{
			description: "multiple elements",
			values:      []int{-12, -23, 34, 45, 56},
			count:       5,
			expect:      56,
		},
		{
			description: "all negative",
			values:      []int{-12, -23, -4},
			count:       3,
			expect:      -4,
		},
		{
			description: "largest first",
			values:      []int{9, 1, 2},
			count:       3,
			expect:      9,
		},
		{
			description: "ties",
			values:      []int{7, 7, 3},
			count:       3,
			expect:      7,
		},
		{
			description: "count limits the scan",
			values:      []int{1, 2, 100},
			count:       2,
			expect:      2,
		},
		{
			description: "zero count ignores values",
			values:      []int{-5, -6},
			count:       0,
			expect:      0,
		},
		{
			description: "count past the end is clamped",
			values:      []int{3, 8},
			count:       10,
			expect:      8,
		},
	} {
		tc := tc // enable parallel sub-tests
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expect, FindMax(tc.values, tc.count))
		})
	}
}

func TestFindMaxDoesNotMutate(t *testing.T) {
	t.Parallel()
	values := []int32{-12, -23, 34, 45, 56}
	assert.Equal(t, int32(56), FindMax(values, uint(len(values))))
	assert.Equal(t, []int32{-12, -23, 34, 45, 56}, values)
}

func TestFindMaxWidths(t *testing.T) {
	t.Parallel()
	assert.Equal(t, int8(math.MaxInt8), FindMax([]int8{math.MinInt8, math.MaxInt8, 0}, 3))
	assert.Equal(t, int64(math.MinInt64), FindMax([]int64{math.MinInt64}, 1))
}

func TestMax(t *testing.T) {
	t.Parallel()
	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		_, err := Max([]int{})
		assert.ErrorIs(t, err, ErrEmpty)
		assert.EqualError(t, err, "no values")
	})

	t.Run("zero is a real value", func(t *testing.T) {
		t.Parallel()
		largest, err := Max([]int{-3, 0, -1})
		assert.NoError(t, err)
		assert.Equal(t, 0, largest)
	})

	t.Run("multiple elements", func(t *testing.T) {
		t.Parallel()
		largest, err := Max([]int{-12, -23, 34, 45, 56})
		assert.NoError(t, err)
		assert.Equal(t, 56, largest)
	})
}

func testFindMaxProperties(t *rapid.T) {
	values := rapid.SliceOfN(rapid.Int(), 1, 50).Draw(t, "values")

	sorted := append([]int(nil), values...)
	sort.Ints(sorted)
	expect := sorted[len(sorted)-1]

	require.Equal(t, expect, FindMax(values, uint(len(values))))
	largest, err := Max(values)
	require.NoError(t, err)
	require.Equal(t, expect, largest)
}

func TestFindMaxProperties(t *testing.T) {
	t.Parallel()
	rapid.Check(t, testFindMaxProperties)
}

func FuzzFindMax(f *testing.F) {
	f.Fuzz(rapid.MakeFuzz(testFindMaxProperties))
}
