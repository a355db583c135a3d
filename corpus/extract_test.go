package corpus

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustExtract(t *testing.T, raw string) []TestGroup {
	t.Helper()
	groups, err := Extract(raw)
	require.NoError(t, err)
	return groups
}

func TestExtractNoFencesYieldsNoGroups(t *testing.T) {
	groups := mustExtract(t, "just some prose\nwith no fences anywhere\n")
	assert.Empty(t, groups)
}

func TestExtractSingleGroup(t *testing.T) {
	groups := mustExtract(t, `r"""Usage: prog

"""
$ prog --flag
{"a": 1}

$ prog --bad
"user-error"
`)
	require.Len(t, groups, 1)
	assert.Equal(t, "Usage: prog\n\n", groups[0].Document)

	require.Len(t, groups[0].Cases, 2)

	first := groups[0].Cases[0]
	assert.Equal(t, "prog", first.ProgramName)
	assert.Equal(t, []string{"--flag"}, first.Argv)
	assert.False(t, first.Expectation.ExpectError)
	assert.Equal(t, map[string]interface{}{"a": float64(1)}, first.Expectation.Value)

	second := groups[0].Cases[1]
	assert.True(t, second.Expectation.ExpectError)
	assert.Nil(t, second.Expectation.Value)
}

func TestExtractTokenizesArgvDroppingEmptyTokens(t *testing.T) {
	groups := mustExtract(t, "r\"\"\"doc\"\"\"\n$ prog  -a   --opt=2 \t x\n{}\n")
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Cases, 1)
	assert.Equal(t, []string{"-a", "--opt=2", "x"}, groups[0].Cases[0].Argv)
}

func TestExtractClassifiesExpectationByJSONType(t *testing.T) {
	for literal, expectError := range map[string]bool{
		`{"key": "value"}`: false,
		`{}`:               false,
		`["user-error"]`:   true,
		`"user-error"`:     true,
		`42`:               true,
		`true`:             true,
		`null`:             true,
	} {
		groups := mustExtract(t, "r\"\"\"doc\"\"\"\n$ prog\n"+literal+"\n")
		require.Len(t, groups, 1)
		require.Len(t, groups[0].Cases, 1)
		assert.Equal(t, expectError, groups[0].Cases[0].Expectation.ExpectError,
			"literal %s", literal)
	}
}

func TestExtractStripsCommentsBeforeAnythingElse(t *testing.T) {
	groups := mustExtract(t, "r\"\"\"Usage: prog # comment\nsecond line # another\n\"\"\"\n$ prog # trailing\n{}\n")
	require.Len(t, groups, 1)
	assert.Equal(t, "Usage: prog \nsecond line \n", groups[0].Document)
	require.Len(t, groups[0].Cases, 1)
	assert.Equal(t, "prog", groups[0].Cases[0].ProgramName)
	assert.Empty(t, groups[0].Cases[0].Argv)
}

// The leading """ fence is stripped with no matching trailing check, and
// everything before the first r""" fence is discarded. Both behaviors are
// load-bearing for existing corpora.
func TestExtractAsymmetricFenceHandling(t *testing.T) {
	groups := mustExtract(t, `"""preamble text, discarded even when it contains $ markers
r"""doc"""
$ prog
{}
`)
	require.Len(t, groups, 1)
	assert.Equal(t, "doc", groups[0].Document)
	require.Len(t, groups[0].Cases, 1)
}

func TestExtractKeepsGroupsWithZeroCases(t *testing.T) {
	groups := mustExtract(t, `r"""Usage: prog <arg>

"""
`)
	require.Len(t, groups, 1)
	assert.Equal(t, "Usage: prog <arg>\n\n", groups[0].Document)
	assert.Empty(t, groups[0].Cases)
}

func TestExtractAllowsMultilineExpectations(t *testing.T) {
	groups := mustExtract(t, "r\"\"\"doc\"\"\"\n$ prog\n{\"a\": 1,\n \"b\": 2}\n")
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Cases, 1)
	assert.Equal(t,
		map[string]interface{}{"a": float64(1), "b": float64(2)},
		groups[0].Cases[0].Expectation.Value)
}

func TestExtractMalformedExpectationIsFatal(t *testing.T) {
	_, err := Extract("r\"\"\"doc\"\"\"\n$ prog\nnot json at all\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid expected-result JSON")
}

func TestExtractSampleCorpus(t *testing.T) {
	data, err := os.ReadFile("testdata/testcases.docopt")
	require.NoError(t, err)

	groups := mustExtract(t, string(data))
	require.Len(t, groups, 3)

	assert.Len(t, groups[0].Cases, 2)
	assert.Len(t, groups[1].Cases, 3)
	assert.Empty(t, groups[2].Cases)

	assert.Equal(t, "Usage: prog [options]\n\nOptions: -a  All.\n\n", groups[1].Document)
	assert.Equal(t,
		map[string]interface{}{"-a": true},
		groups[1].Cases[1].Expectation.Value)
}
