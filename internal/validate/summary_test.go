package validate

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course-summarizer/internal/report"
)

func TestSummaryValid(t *testing.T) {
	t.Parallel()

	s := report.Summary{
		Assignment: 1,
		Dir:        "csc344/a1",
		Files: []report.FileRecord{
			{RelPath: "main.c", Lines: 10, Identifiers: []string{"main"}},
			{RelPath: "lib/util.py", Lines: 0, Identifiers: []string{}},
		},
		Identifiers: []string{"main"},
	}
	assert.NoError(t, Summary(s))
}

func TestSummaryAggregatesIssues(t *testing.T) {
	t.Parallel()

	s := report.Summary{
		Assignment: 0,
		Files: []report.FileRecord{
			{RelPath: "/abs.c", Lines: 1},
			{RelPath: "../up.py", Lines: -1},
			{RelPath: `win\path.ml`, Identifiers: []string{"b", "a"}},
			{RelPath: "dup.c"},
			{RelPath: "dup.c"},
		},
		Identifiers: []string{"x", "x"},
	}
	err := Summary(s)
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{
		"assignment number must be >= 1",
		"directory must be non-empty",
		"must be relative",
		"'..' segments",
		"lines must be >= 0",
		"files[2] (win\\path.ml): identifiers must be sorted",
		"duplicate file path",
		"a0: identifiers must be sorted and unique",
	} {
		assert.Contains(t, msg, want)
	}
	if filepath.Separator == '\\' {
		assert.Contains(t, msg, "forward slashes")
	} else {
		assert.NotContains(t, msg, "forward slashes")
	}
}

func TestSummaryAcceptsBackslashInUnixNames(t *testing.T) {
	t.Parallel()
	if filepath.Separator == '\\' {
		t.Skip("backslash is the path separator")
	}

	s := report.Summary{
		Assignment:  1,
		Dir:         "csc344/a1",
		Files:       []report.FileRecord{{RelPath: `odd\name.py`, Lines: 1, Identifiers: []string{}}},
		Identifiers: []string{},
	}
	assert.NoError(t, Summary(s))
}

func TestIndex(t *testing.T) {
	t.Parallel()

	ok := []report.IndexEntry{
		{Assignment: 1, Href: "a1/summary_a1.html"},
		{Assignment: 2, Href: "a2/summary_a2.html"},
	}
	assert.NoError(t, Index(ok))

	bad := []report.IndexEntry{
		{Assignment: 1, Href: "../a1/summary_a1.html"},
		{Assignment: 1, Href: ""},
	}
	err := Index(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate assignment")
	assert.Contains(t, err.Error(), "non-empty")
}
