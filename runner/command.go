package runner

import (
	"strings"

	"github.com/alessio/shellescape"

	"github.com/docopt/cli-conformance-tests/corpus"
)

// commandBuilder assembles a copy-pasteable shell command for diagnostics.
type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

func commandString(c corpus.TestCase) string {
	var b commandBuilder
	b.add(c.ProgramName)
	b.add(c.Argv...)
	return b.String()
}

func describeCommand(path string, args []string) string {
	var b commandBuilder
	b.add(path)
	b.add(args...)
	return b.String()
}
