package normalize

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type report struct {
	Summary            string `json:"summary"`
	FullReportMarkdown string `json:"fullReportMarkdown"`
}

func TestParseAs_RepairsRawNewline(t *testing.T) {
	raw := "{\"summary\":\"line one\nline two\",\"fullReportMarkdown\":\"# R\"}"

	var direct report
	require.Error(t, json.Unmarshal([]byte(raw), &direct), "raw newline must not decode directly")

	got, err := ParseAs[report](raw, "Report")
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", got.Summary)
	assert.NotContains(t, got.Summary, `\n`)
	assert.Equal(t, "# R", got.FullReportMarkdown)
}

func TestParseAs_RepairEscapesAndDrops(t *testing.T) {
	raw := "{\"summary\":\"tab\there\rcr\x01bell\x7fdel\",\"fullReportMarkdown\":\"keep \\\"quoted\\\" and \\\\n\"}"
	got, err := ParseAs[report](raw, "Report")
	require.NoError(t, err)
	assert.Equal(t, "tab\there\rcrbelldel", got.Summary)
	assert.Equal(t, `keep "quoted" and \n`, got.FullReportMarkdown)
}

func TestRepair_LeavesStructureAlone(t *testing.T) {
	in := "{\n\t\"a\": \"x\ny\",\n\t\"b\": [1, 2]\n}"
	want := "{\n\t\"a\": \"x\\ny\",\n\t\"b\": [1, 2]\n}"
	assert.Equal(t, want, string(Repair([]byte(in))))
}

func TestParseAs_EmptyArray(t *testing.T) {
	got, err := ParseAs[[]report]("[]", "ArchitectureIssues")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParseAs_TypedFailure(t *testing.T) {
	_, err := ParseAs[report]("I could not produce a report.", "Report")
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "Report", perr.Context)
	assert.Equal(t, "I could not produce a report.", perr.Snippet)
	assert.NoError(t, perr.RepairCause)
	assert.Contains(t, err.Error(), "Report")
}

func TestParseAs_RepairAlsoFails(t *testing.T) {
	raw := "{\"summary\":\"broken\nstring\""
	_, err := ParseAs[report](raw, "Report")

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Error(t, perr.Cause)
	assert.Error(t, perr.RepairCause)
	assert.Contains(t, err.Error(), "after repair")
}

func TestParseAs_WrongShape(t *testing.T) {
	_, err := ParseAs[[]report](`{"summary":"x"}`, "ArchitectureIssues")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "ArchitectureIssues", perr.Context)
}

func TestParseError_SnippetTruncated(t *testing.T) {
	long := strings.Repeat("z", 500)
	_, err := ParseAs[report](long, "Report")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Len(t, perr.Snippet, snippetLen+3)
}

func TestParseError_SnippetKeepsRunesWhole(t *testing.T) {
	// Two-byte runes at odd offsets put the cut inside a rune.
	long := "x" + strings.Repeat("é", 300)
	_, err := ParseAs[report](long, "Report")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.True(t, utf8.ValidString(perr.Snippet), "snippet %q is not valid UTF-8", perr.Snippet)
	assert.Equal(t, long[:snippetLen-1]+"...", perr.Snippet)
}

func TestDecode(t *testing.T) {
	got, err := Decode[report]("```json\n{\"summary\":\"ok\"}\n```", "Report")
	require.NoError(t, err)
	assert.Equal(t, "ok", got.Summary)
}
