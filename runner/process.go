package runner

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/docopt/cli-conformance-tests/framework"
)

// Executable is the external program under test, invoked once per case.
//
// Run starts the program with the given arguments, waits for it to finish,
// and returns its stdout and stderr merged into one stream. A *ExitStatusError
// reports a non-zero exit (or signal termination); any other non-nil error
// means the program could not be run at all.
type Executable interface {
	Run(args []string) ([]byte, error)
}

// ExitStatusError reports that the process ran to completion but the platform
// considered it failed: a non-zero exit status, or termination by a signal
// (reported as status -1).
type ExitStatusError struct {
	Status int
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("exit status %d", e.Status)
}

// Program runs a real executable as a child process. The child gets no stdin
// and no deadline: a hanging executable hangs the whole run. That is an
// accepted property of this harness, so callers must not wrap Run in their
// own timeout and kill logic.
type Program struct {
	Path   string
	Logger framework.Logger
}

func (p Program) Run(args []string) ([]byte, error) {
	logger := p.Logger
	if logger == nil {
		logger = framework.NullLogger()
	}
	logger.Printf("running: %s", describeCommand(p.Path, args))

	cmd := exec.Command(p.Path, args...)
	out, err := cmd.CombinedOutput()

	var exit *exec.ExitError
	if errors.As(err, &exit) {
		err = &ExitStatusError{Status: exit.ExitCode()}
	}
	return out, err
}
