package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dshills/archon/internal/review"
)

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &TextWriter{}
	if err := w.Write(&buf, sampleReview()); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Archon Architecture Review 9b2f6c1e",
		"Components: 2 (api, db)",
		"Issues: 2 total (1 high, 0 medium, 1 low)",
		"[!!] HIGH",
		"[-] LOW",
		"Single database",
		"Components: api, db",
		"Recommendations:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}

	if strings.Index(out, "HIGH") > strings.Index(out, "LOW") {
		t.Error("high severity issues should come first")
	}
	if strings.Contains(out, "MEDIUM") {
		t.Error("empty severity group should be omitted")
	}
}

func TestTextWriter_NoIssues(t *testing.T) {
	r := sampleReview()
	r.Issues = []review.ArchitectureIssue{}

	var buf bytes.Buffer
	if err := (&TextWriter{}).Write(&buf, r); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No issues found") {
		t.Errorf("output = %s", buf.String())
	}
}

func TestTextWriter_UnknownSeverityIsListed(t *testing.T) {
	r := sampleReview()
	r.Issues = append(r.Issues, review.ArchitectureIssue{
		ID: "issue-3", Title: "Critical hole", Severity: "critical",
		Description: "Auth can be bypassed.",
	})

	var buf bytes.Buffer
	if err := (&TextWriter{}).Write(&buf, r); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"Issues: 3 total (1 high, 0 medium, 1 low, 1 other)",
		"[?] CRITICAL",
		"Critical hole",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if strings.Index(out, "CRITICAL") < strings.Index(out, "[-] LOW") {
		t.Error("unrecognised severities should follow the known ones")
	}
}

func TestSeverityOrder(t *testing.T) {
	grouped := map[review.Severity][]review.ArchitectureIssue{
		"zeta":                {{}},
		review.SeverityLow:    {{}},
		"critical":            {{}},
		review.SeverityHigh:   {{}},
		review.SeverityMedium: nil,
	}
	got := severityOrder(grouped)
	want := []review.Severity{review.SeverityHigh, review.SeverityLow, "critical", "zeta"}
	if len(got) != len(want) {
		t.Fatalf("severityOrder = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("severityOrder = %v, want %v", got, want)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestTextWriter_PropagatesWriteError(t *testing.T) {
	if err := (&TextWriter{}).Write(failingWriter{}, sampleReview()); err == nil {
		t.Error("expected write error")
	}
}

func TestWrapText(t *testing.T) {
	if got := wrapText("short", 70); len(got) != 1 || got[0] != "short" {
		t.Errorf("wrapText(short) = %v", got)
	}
	long := strings.Repeat("word ", 40)
	for _, line := range wrapText(long, 20) {
		if len(line) > 20 {
			t.Errorf("line too long: %q", line)
		}
	}
}

func TestSeverityIcon(t *testing.T) {
	tests := map[review.Severity]string{
		review.SeverityHigh:   "[!!]",
		review.SeverityMedium: "[!]",
		review.SeverityLow:    "[-]",
		"other":               "[?]",
	}
	for sev, want := range tests {
		if got := severityIcon(sev); got != want {
			t.Errorf("severityIcon(%s) = %s, want %s", sev, got, want)
		}
	}
}
