package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/docopt/cli-conformance-tests/framework"
)

type commandParams struct {
	binPath    string
	testcases  string
	configPath string
	filters    framework.RegexFilters
	debug      bool
	debugAll   bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.binPath, "bin", "", "path to the executable under test")
	fs.StringVar(&c.testcases, "testcases", "", "path to the test case corpus file")
	fs.StringVar(&c.configPath, "config", "", "optional YAML run configuration file")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select cases to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select cases not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed cases")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all cases")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	if c.configPath != "" {
		cfg, err := loadRunConfig(c.configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return false
		}
		if err := c.applyConfig(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return false
		}
	}
	if c.binPath == "" {
		fmt.Fprintln(os.Stderr, "-bin is required")
		fs.Usage()
		return false
	}
	if c.testcases == "" {
		fmt.Fprintln(os.Stderr, "-testcases is required")
		fs.Usage()
		return false
	}
	return true
}

// applyConfig fills in whatever the command line left unset. Flags win.
func (c *commandParams) applyConfig(cfg runConfig) error {
	if c.binPath == "" {
		c.binPath = cfg.Bin
	}
	if c.testcases == "" {
		c.testcases = cfg.Testcases
	}
	for _, pattern := range cfg.Run {
		if err := c.filters.MustMatch.Set(pattern); err != nil {
			return fmt.Errorf("config %q: %w", c.configPath, err)
		}
	}
	for _, pattern := range cfg.Skip {
		if err := c.filters.MustNotMatch.Set(pattern); err != nil {
			return fmt.Errorf("config %q: %w", c.configPath, err)
		}
	}
	return nil
}
