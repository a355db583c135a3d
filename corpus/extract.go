package corpus

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

const (
	groupFence    = `r"""`
	documentFence = `"""`
)

// Comments run from '#' to end of line, on every line independently.
var commentPattern = regexp.MustCompile(`(?m)#.*$`)

// Extract parses a corpus into its test groups, in the order they appear.
//
// Two quirks of the format are deliberate and must not be "fixed": a leading
// """ fence is stripped without looking for a matching trailing one, and
// everything before the first r""" fence is discarded unread. Existing
// corpora rely on both.
//
// Groups with zero cases are returned as-is; filtering them out is the
// caller's job.
func Extract(raw string) ([]TestGroup, error) {
	raw = commentPattern.ReplaceAllString(raw, "")
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, documentFence)

	segments := strings.Split(raw, groupFence)
	groups := make([]TestGroup, 0, len(segments)-1)
	for i, segment := range segments[1:] {
		group, err := parseGroup(segment)
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", i+1, err)
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func parseGroup(segment string) (TestGroup, error) {
	document, body, _ := strings.Cut(segment, documentFence)
	group := TestGroup{Document: document}

	// The first piece is whatever sits between the document fence and the
	// first case marker, typically a blank line.
	pieces := strings.Split(body, "$")
	for i, piece := range pieces[1:] {
		c, err := parseCase(piece)
		if err != nil {
			return TestGroup{}, fmt.Errorf("case %d: %w", i+1, err)
		}
		group.Cases = append(group.Cases, c)
	}
	return group, nil
}

func parseCase(piece string) (TestCase, error) {
	argLine, expectText, _ := strings.Cut(strings.TrimSpace(piece), "\n")

	var decoded interface{}
	if err := json.Unmarshal([]byte(expectText), &decoded); err != nil {
		return TestCase{}, fmt.Errorf("invalid expected-result JSON %q: %w", expectText, err)
	}

	prog, rest, _ := strings.Cut(strings.TrimSpace(argLine), " ")
	return TestCase{
		ProgramName: prog,
		Argv:        strings.Fields(rest),
		Expectation: classifyExpectation(decoded),
	}, nil
}
