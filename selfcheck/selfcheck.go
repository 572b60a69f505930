// Package selfcheck contains the built-in cases run by 'intutil check'.
package selfcheck

import (
	"github.com/johnstarich/go/intutil/arith"
	"github.com/johnstarich/go/intutil/harness"
	"github.com/johnstarich/go/intutil/scan"
)

// Suite names
const (
	SuiteAdd      = "add"
	SuiteSubtract = "subtract"
	SuiteFindMax  = "findmax"
)

// Suites returns every suite name in run order
func Suites() []string {
	return []string{SuiteAdd, SuiteSubtract, SuiteFindMax}
}

// Cases returns a fresh copy of all built-in cases
func Cases() []harness.Case {
	return []harness.Case{
		addCase("positive numbers", 10, 20, 30),
		addCase("negative number and positive number", -15, 25, 10),
		addCase("small positive numbers", 2, 3, 5),
		addCase("small negative and positive numbers", -2, 1, -1),
		addCase("zeros", 0, 0, 0),

		subtractCase("normal execution", 5, 3, 2),
		subtractCase("edge case zeros", 0, 0, 0),
		subtractCase("negative and positive numbers", -5, 1, -6),

		findMaxCase("empty array returns zero", 0),
		findMaxCase("single element array returns that value", 10, 10),
		findMaxCase("multiple elements return largest one", 56, -12, -23, 34, 45, 56),
	}
}

func addCase(description string, a, b, want int) harness.Case {
	return harness.Case{
		Suite:       SuiteAdd,
		Description: description,
		Inputs:      []int{a, b},
		Want:        want,
		Func: func(inputs []int) int {
			return arith.Add(inputs[0], inputs[1])
		},
	}
}

func subtractCase(description string, a, b, want int) harness.Case {
	return harness.Case{
		Suite:       SuiteSubtract,
		Description: description,
		Inputs:      []int{a, b},
		Want:        want,
		Func: func(inputs []int) int {
			return arith.Subtract(inputs[0], inputs[1])
		},
	}
}

func findMaxCase(description string, want int, values ...int) harness.Case {
	return harness.Case{
		Suite:       SuiteFindMax,
		Description: description,
		Inputs:      values,
		Want:        want,
		Func: func(inputs []int) int {
			return scan.FindMax(inputs, uint(len(inputs)))
		},
	}
}
