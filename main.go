// Command cli-conformance-tests runs black-box conformance test cases,
// extracted from a documentation-style corpus file, against an external
// command-line executable.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/docopt/cli-conformance-tests/corpus"
	"github.com/docopt/cli-conformance-tests/framework"
	"github.com/docopt/cli-conformance-tests/runner"
)

const (
	exitCasesFailed = 1
	exitFatal       = 2
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(exitFatal)
	}

	data, err := os.ReadFile(params.testcases)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot read test cases: %s\n", err)
		os.Exit(exitFatal)
	}

	groups, err := corpus.Extract(string(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot parse test cases: %s\n", err)
		os.Exit(exitFatal)
	}

	framework.PrintFilterDescription(params.filters)

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	program := runner.Program{Path: params.binPath, Logger: framework.NullLogger()}
	if params.debugAll {
		program.Logger = log.New(os.Stdout, "", log.LstdFlags)
	}

	results, err := runner.Run(groups, program, params.filters.AsFilter, testLogger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %s\n", err)
		os.Exit(exitFatal)
	}

	fmt.Println()
	if results.OK() {
		fmt.Println(color.GreenString("PASS (%d)", results.PassCount()))
		return
	}
	fmt.Println(color.RedString("%d failures", results.FailCount()))
	os.Exit(exitCasesFailed)
}
