// Package corpus extracts conformance test cases from a documentation-style
// text blob.
//
// The format: '#' starts a comment that runs to the end of the line. Each
// r"""-fenced block is one test group; the text up to the first """ is the
// group's document, and each '$'-prefixed entry after that is one case — a
// command line, then a JSON literal on the following line(s) giving the
// expected result. A JSON object means the invocation must succeed and print
// exactly that object; any other JSON type means the invocation must fail.
package corpus

// TestGroup is one fenced block: a document plus the cases that exercise it.
// A group may have no cases at all; such groups are kept here and skipped by
// the runner, so that extraction stays a pure transformation of the text.
type TestGroup struct {
	Document string
	Cases    []TestCase
}

// TestCase is one invocation of the executable under test.
type TestCase struct {
	// ProgramName is the leading word of the case's command line. It is
	// informational only; the executable actually invoked comes from
	// configuration, not from the corpus.
	ProgramName string

	// Argv is the rest of the command line split on whitespace, with empty
	// tokens dropped.
	Argv []string

	Expectation Expectation
}

// Expectation is the structurally classified expected result of a case.
// Classification depends only on the JSON type of the expected-result
// literal, never on its content.
type Expectation struct {
	// ExpectError reports that the case expects the invocation to fail with
	// a non-zero exit status. Set when the literal decodes to anything other
	// than a JSON object.
	ExpectError bool

	// Value is the decoded JSON object the invocation must print on success.
	// Nil when ExpectError is set.
	Value interface{}
}

func classifyExpectation(decoded interface{}) Expectation {
	if _, isObject := decoded.(map[string]interface{}); isObject {
		return Expectation{Value: decoded}
	}
	return Expectation{ExpectError: true}
}
