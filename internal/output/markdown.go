package output

import (
	"io"
	"strings"

	"github.com/dshills/archon/internal/review"
)

// MarkdownWriter outputs the generated report followed by an issue table.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, r *review.ArchitectureReview) error {
	ew := &errWriter{w: w}

	report := strings.TrimSpace(r.FullReportMarkdown)
	if report == "" {
		report = "# Architecture Review\n\n" + r.Summary
	}
	ew.printf("%s\n\n", report)

	counts := review.CountSeverities(r.Issues)
	ew.printf("## Issue Summary\n\n")
	ew.printf("| Severity | Count |\n")
	ew.printf("|----------|-------|\n")
	ew.printf("| High     | %d    |\n", counts.High)
	ew.printf("| Medium   | %d    |\n", counts.Medium)
	ew.printf("| Low      | %d    |\n", counts.Low)
	if other := len(r.Issues) - counts.High - counts.Medium - counts.Low; other > 0 {
		ew.printf("| Other    | %d    |\n", other)
	}
	ew.printf("| **Total** | **%d** |\n\n", len(r.Issues))

	if len(r.Issues) == 0 {
		ew.println("No issues found. :white_check_mark:")
		return ew.err
	}

	grouped := groupBySeverity(r.Issues)
	for _, sev := range severityOrder(grouped) {
		issues := grouped[sev]
		if len(issues) == 0 {
			continue
		}
		ew.printf("<details>\n<summary>%s %s (%d)</summary>\n\n", mdSeverityIcon(sev), strings.ToUpper(string(sev)), len(issues))
		ew.printf("| Issue | Category | Effort | Components |\n")
		ew.printf("|-------|----------|--------|------------|\n")
		for _, is := range issues {
			ew.printf("| %s | %s | %s | %s |\n",
				mdCell(is.Title), is.Category, is.EffortEstimate, mdCell(strings.Join(is.ComponentsInvolved, ", ")))
		}
		ew.printf("\n</details>\n\n")
	}

	ew.printf("*Review `%s`, created %s*\n", r.ID, r.CreatedAt)
	return ew.err
}

func mdSeverityIcon(s review.Severity) string {
	switch s {
	case review.SeverityHigh:
		return ":red_circle:"
	case review.SeverityMedium:
		return ":orange_circle:"
	case review.SeverityLow:
		return ":yellow_circle:"
	default:
		return ":white_circle:"
	}
}

// mdCell keeps a value on one table row.
func mdCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
