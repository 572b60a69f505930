package harness

import (
	"fmt"
	"strings"
)

// Error aggregates every failed case in a run
type Error struct {
	errs []error
}

func (e *Error) Error() string {
	if len(e.errs) == 1 {
		return fmt.Sprintf("harness: %v", e.errs[0])
	}
	errStrs := make([]string, len(e.errs))
	for i, err := range e.errs {
		errStrs[i] = err.Error()
	}
	return fmt.Sprintf("harness: %d failures: %s", len(e.errs), strings.Join(errStrs, "; "))
}

// Unwrap implements errors.Unwrap() defined interface. Returns the first failure only.
func (e *Error) Unwrap() error {
	return e.errs[0]
}

// Failures returns each failure in case order
func (e *Error) Failures() []error {
	return append([]error(nil), e.errs...)
}
