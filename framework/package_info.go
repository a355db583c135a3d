// Package framework contains the test-harness infrastructure that is not
// specific to what is being tested: case identifiers, result accumulation,
// regex-based case filtering, and the logging interfaces the runner reports
// through.
//
// The domain-specific packages sit on top: corpus knows how cases are written
// down, runner knows how to execute them against the external executable, and
// both speak in this package's types.
package framework
