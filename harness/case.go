// Package harness runs literal integer test cases and reports on their outcome.
//
// A run either continues past failures and aggregates them at the end, or stops at the first failure
// when Config.FailFast is set.
package harness

import (
	"strings"

	"github.com/pkg/errors"
)

// Case is a single check: Func called with Inputs must return Want
type Case struct {
	Suite       string
	Description string
	Inputs      []int
	Want        int
	Func        func(inputs []int) int
}

// Name returns the case's suite-qualified name
func (c Case) Name() string {
	return c.Suite + "/" + c.Description
}

func (c Case) run() (got int, err error) {
	if c.Func == nil {
		return 0, errors.New("no function to check")
	}
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("panic: %v", r)
		}
	}()
	got = c.Func(c.Inputs)
	if got != c.Want {
		return got, errors.Errorf("got %d, want %d", got, c.Want)
	}
	return got, nil
}

// Select returns the cases belonging to any of 'suites', compared case-insensitively.
// Returns all cases if no suites are given.
func Select(cases []Case, suites ...string) []Case {
	if len(suites) == 0 {
		return cases
	}
	var selected []Case
	for _, c := range cases {
		for _, suite := range suites {
			if strings.EqualFold(c.Suite, suite) {
				selected = append(selected, c)
				break
			}
		}
	}
	return selected
}

// Result is the outcome of running one Case
type Result struct {
	Case    Case
	Got     int
	Err     error
	Skipped bool
}

// Passed returns true if the case ran and returned its expected value
func (r Result) Passed() bool {
	return !r.Skipped && r.Err == nil
}
