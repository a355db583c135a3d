package framework

import (
	"fmt"
	"strings"
)

// Results accumulates the outcome of one run of the case runner. Counters are
// derived from the result lists rather than kept as separate mutable state,
// so a Results value is self-consistent by construction.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID  TestID
	Errors  []error
	Skipped bool
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// PassCount is the number of cases that ran to completion without errors.
// Skipped cases count toward neither passes nor failures.
func (r Results) PassCount() int {
	n := 0
	for _, t := range r.Tests {
		if !t.Skipped && len(t.Errors) == 0 {
			n++
		}
	}
	return n
}

func (r Results) FailCount() int {
	return len(r.Failures)
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}

func (f TestFailure) Unwrap() error {
	return f.Err
}
