package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// runConfig mirrors the optional YAML configuration file, an alternative to
// spelling everything out on the command line:
//
//	bin: ./docopt_testee
//	testcases: testcases.docopt
//	skip:
//	  - "group-3/.*"
type runConfig struct {
	Bin       string   `yaml:"bin"`
	Testcases string   `yaml:"testcases"`
	Run       []string `yaml:"run,omitempty"`
	Skip      []string `yaml:"skip,omitempty"`
}

func loadRunConfig(path string) (runConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return runConfig{}, fmt.Errorf("cannot read config: %w", err)
	}
	var cfg runConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return runConfig{}, fmt.Errorf("cannot parse config %q: %w", path, err)
	}
	return cfg, nil
}
