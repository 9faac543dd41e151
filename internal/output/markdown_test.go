package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dshills/archon/internal/review"
)

func TestMarkdownWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&MarkdownWriter{}).Write(&buf, sampleReview()); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "# Architecture Review\n\nDetails here.") {
		t.Errorf("report should lead the output:\n%s", out)
	}
	for _, want := range []string{
		"| High     | 1    |",
		"| **Total** | **2** |",
		"<summary>:red_circle: HIGH (1)</summary>",
		"| Single database | reliability | M | api, db |",
		"Review `9b2f6c1e-5d43-4a61-8f0e-2f6a3c7b1d20`",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestMarkdownWriter_UnknownSeverityIsListed(t *testing.T) {
	r := sampleReview()
	r.Issues = append(r.Issues, review.ArchitectureIssue{
		ID: "issue-3", Title: "Critical hole", Severity: "critical",
		Description: "Auth can be bypassed.",
	})

	var buf bytes.Buffer
	if err := (&MarkdownWriter{}).Write(&buf, r); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"| Other    | 1    |",
		"| **Total** | **3** |",
		"<summary>:white_circle: CRITICAL (1)</summary>",
		"Critical hole",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestMarkdownWriter_FallsBackToSummary(t *testing.T) {
	r := sampleReview()
	r.FullReportMarkdown = "  "
	r.Issues = nil

	var buf bytes.Buffer
	if err := (&MarkdownWriter{}).Write(&buf, r); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, r.Summary) {
		t.Errorf("summary missing:\n%s", out)
	}
	if !strings.Contains(out, "No issues found") {
		t.Errorf("no-issue marker missing:\n%s", out)
	}
}

func TestMdCell(t *testing.T) {
	if got := mdCell("a|b\nc"); got != `a\|b c` {
		t.Errorf("mdCell = %q", got)
	}
}
