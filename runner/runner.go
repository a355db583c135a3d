// Package runner executes extracted test cases against the executable under
// test, one child process per case, strictly in corpus order.
package runner

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"

	"github.com/docopt/cli-conformance-tests/corpus"
	"github.com/docopt/cli-conformance-tests/framework"
)

// Run drives every case of every group, sequentially and in order, against
// exe. Each case invokes the executable with the group's document as the
// first argument followed by the case's argv.
//
// Case-level failures are recorded in the returned Results and reported
// through logger as they happen; they never stop the run. A non-nil error is
// fatal — a case's expected-success output was not valid JSON, or the
// executable could not be spawned — and aborts the run, returning whatever
// results had accumulated.
func Run(
	groups []corpus.TestGroup,
	exe Executable,
	filter framework.Filter,
	logger framework.TestLogger,
) (framework.Results, error) {
	if logger == nil {
		logger = framework.NullTestLogger()
	}

	var results framework.Results
	for g, group := range groups {
		if len(group.Cases) == 0 {
			continue
		}
		for i, c := range group.Cases {
			id := caseID(g, i, c)
			logger.TestStarted(id)

			if filter != nil && !filter(id) {
				logger.TestSkipped(id, "excluded by filter parameters")
				results.Tests = append(results.Tests, framework.TestResult{TestID: id, Skipped: true})
				continue
			}

			var debugLog framework.CapturingLogger
			failure, err := runCase(group.Document, c, exe, &debugLog)
			if err != nil {
				return results, framework.TestFailure{ID: id, Err: err}
			}

			result := framework.TestResult{TestID: id}
			if failure != nil {
				result.Errors = []error{failure}
				results.Failures = append(results.Failures, result)
				logger.TestError(id, failure)
			}
			results.Tests = append(results.Tests, result)
			logger.TestFinished(id, failure != nil, debugLog.Output())
		}
	}
	return results, nil
}

func caseID(group, index int, c corpus.TestCase) framework.TestID {
	return framework.TestID{Path: []string{
		fmt.Sprintf("group-%d", group+1),
		fmt.Sprintf("case-%d %s", index+1, commandString(c)),
	}}
}

// runCase returns a non-nil *CaseFailure when the case failed, or a non-nil
// error when the whole run must abort.
func runCase(
	document string,
	c corpus.TestCase,
	exe Executable,
	debugLog framework.Logger,
) (*CaseFailure, error) {
	command := commandString(c)
	out, runErr := exe.Run(append([]string{document}, c.Argv...))
	debugLog.Printf("captured %d bytes of output", len(out))

	if runErr != nil {
		var exit *ExitStatusError
		if !errors.As(runErr, &exit) {
			return nil, fmt.Errorf("could not run case %q: %w", command, runErr)
		}
		debugLog.Printf("process reported %s", exit)
		if c.Expectation.ExpectError {
			return nil, nil
		}
		return &CaseFailure{
			Document: document,
			Command:  command,
			Output:   out,
			Reason:   fmt.Sprintf("this should have succeeded! exit code = %d", exit.Status),
		}, nil
	}

	if c.Expectation.ExpectError {
		return &CaseFailure{
			Document: document,
			Command:  command,
			Output:   out,
			Reason:   "an error was expected but it appeared to succeed!",
		}, nil
	}

	var actual interface{}
	if err := json.Unmarshal(out, &actual); err != nil {
		// Unparseable output from a clean exit is a defect in the executable
		// under test, not a failing case; it aborts the run.
		return nil, fmt.Errorf("case %q: output is not valid JSON: %w", command, err)
	}

	if !reflect.DeepEqual(c.Expectation.Value, actual) {
		expected, _ := json.Marshal(c.Expectation.Value)
		return &CaseFailure{
			Document: document,
			Command:  command,
			Output:   out,
			Reason: fmt.Sprintf("JSON does not match expected: %s\n%s",
				expected, cmp.Diff(c.Expectation.Value, actual)),
		}, nil
	}
	return nil, nil
}
