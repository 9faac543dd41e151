package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dshills/archon/internal/review"
)

// TextWriter outputs a human-readable terminal summary.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, r *review.ArchitectureReview) error {
	ew := &errWriter{w: w}
	counts := review.CountSeverities(r.Issues)

	ew.printf("Archon Architecture Review %s\n", r.ID)
	ew.printf("Created: %s\n", r.CreatedAt)
	ew.println(strings.Repeat("─", 60))
	for _, line := range wrapText(r.Summary, 70) {
		ew.println(line)
	}
	ew.println(strings.Repeat("─", 60))
	ew.printf("Components: %d", len(r.ArchitectureModel.Components))
	if ids := r.ArchitectureModel.ComponentIDs(); len(ids) > 0 {
		ew.printf(" (%s)", strings.Join(ids, ", "))
	}
	ew.println("")
	ew.printf("Issues: %d total", len(r.Issues))
	if len(r.Issues) > 0 {
		ew.printf(" (%d high, %d medium, %d low", counts.High, counts.Medium, counts.Low)
		if other := len(r.Issues) - counts.High - counts.Medium - counts.Low; other > 0 {
			ew.printf(", %d other", other)
		}
		ew.printf(")")
	}
	ew.println("")
	ew.println(strings.Repeat("─", 60))

	if len(r.Issues) == 0 {
		ew.println("\nNo issues found. Looks good!")
		return ew.err
	}

	grouped := groupBySeverity(r.Issues)
	for _, sev := range severityOrder(grouped) {
		issues := grouped[sev]
		if len(issues) == 0 {
			continue
		}

		ew.printf("\n%s %s\n", severityIcon(sev), strings.ToUpper(string(sev)))
		ew.println(strings.Repeat("─", 40))

		sort.SliceStable(issues, func(i, j int) bool {
			return issues[i].Category < issues[j].Category
		})

		for _, is := range issues {
			ew.printf("\n  %s\n", is.Title)
			ew.printf("  Category: %s | Effort: %s", is.Category, is.EffortEstimate)
			if len(is.ComponentsInvolved) > 0 {
				ew.printf(" | Components: %s", strings.Join(is.ComponentsInvolved, ", "))
			}
			ew.println("")

			for _, line := range wrapText(is.Description, 70) {
				ew.printf("    %s\n", line)
			}
			if is.Recommendation != "" {
				ew.println("  Recommendation:")
				for _, line := range wrapText(is.Recommendation, 70) {
					ew.printf("    %s\n", line)
				}
			}
		}
	}

	if r.RecommendationsOverview != "" {
		ew.printf("\n%s\n", strings.Repeat("─", 60))
		ew.println("Recommendations:")
		for _, line := range wrapText(r.RecommendationsOverview, 70) {
			ew.printf("  %s\n", line)
		}
	}

	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

func groupBySeverity(issues []review.ArchitectureIssue) map[review.Severity][]review.ArchitectureIssue {
	m := make(map[review.Severity][]review.ArchitectureIssue)
	for _, is := range issues {
		m[is.Severity] = append(m[is.Severity], is)
	}
	return m
}

// severityOrder lists the severities present in grouped: high, medium and
// low first, then any unrecognised values from the model in name order.
func severityOrder(grouped map[review.Severity][]review.ArchitectureIssue) []review.Severity {
	known := []review.Severity{review.SeverityHigh, review.SeverityMedium, review.SeverityLow}
	order := make([]review.Severity, 0, len(grouped))
	for _, sev := range known {
		if len(grouped[sev]) > 0 {
			order = append(order, sev)
		}
	}
	var other []review.Severity
	for sev := range grouped {
		if review.SeverityRank(sev) == 0 {
			other = append(other, sev)
		}
	}
	sort.Slice(other, func(i, j int) bool { return other[i] < other[j] })
	return append(order, other...)
}

func severityIcon(s review.Severity) string {
	switch s {
	case review.SeverityHigh:
		return "[!!]"
	case review.SeverityMedium:
		return "[!]"
	case review.SeverityLow:
		return "[-]"
	default:
		return "[?]"
	}
}

// wrapText breaks text on spaces into lines of at most width bytes. A single
// word longer than width gets a line of its own.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}
	lines := []string{words[0]}
	for _, word := range words[1:] {
		last := &lines[len(lines)-1]
		if len(*last)+1+len(word) > width {
			lines = append(lines, word)
			continue
		}
		*last += " " + word
	}
	return lines
}
