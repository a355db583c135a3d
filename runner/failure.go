package runner

import (
	"fmt"
	"io"
	"strings"
)

const (
	documentRule = 40
	commandRule  = 20
	outputRule   = 20
)

// CaseFailure is a case-level failure: the case ran, the run keeps going, and
// this carries everything the diagnostic block needs.
type CaseFailure struct {
	Document string
	Command  string
	// Output is the merged stdout/stderr captured before the failure was
	// established, if any.
	Output []byte
	Reason string
}

func (f *CaseFailure) Error() string {
	return f.Reason
}

// Describe writes the full diagnostic block for the failure: the document,
// the command line, the captured output, and the reason, each under its own
// separator rule.
func (f *CaseFailure) Describe(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("=", documentRule))
	fmt.Fprintln(w, f.Document)
	fmt.Fprintln(w, strings.Repeat(":", commandRule))
	fmt.Fprintln(w, f.Command)
	fmt.Fprintln(w, strings.Repeat("-", outputRule))
	if len(f.Output) > 0 {
		fmt.Fprintln(w, string(f.Output))
	}
	fmt.Fprintln(w, f.Reason)
}
