package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexFiltersSelectByCaseID(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("group-1/.*"))
	require.NoError(t, filters.MustNotMatch.Set("case-2"))

	assert.True(t, filters.AsFilter(TestID{Path: []string{"group-1", "case-1 prog"}}))
	assert.False(t, filters.AsFilter(TestID{Path: []string{"group-1", "case-2 prog"}}))
	assert.False(t, filters.AsFilter(TestID{Path: []string{"group-2", "case-1 prog"}}))
}

func TestEmptyFiltersRunEverything(t *testing.T) {
	var filters RegexFilters
	assert.False(t, filters.IsDefined())
	assert.True(t, filters.AsFilter(TestID{Path: []string{"anything"}}))
}

func TestRegexListRejectsInvalidPattern(t *testing.T) {
	var list RegexList
	assert.Error(t, list.Set("("))
}
