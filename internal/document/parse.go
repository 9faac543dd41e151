package document

import (
	"regexp"
	"strings"

	"github.com/dshills/archon/internal/review"
)

var (
	headingRe = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	fenceRe   = regexp.MustCompile("(?s)```(\\w*)\\n(.*?)```")
)

// Parse splits raw architecture text into heading-delimited sections and
// recognised diagram blocks. It never fails; RawText is the input verbatim.
func Parse(raw string) review.ArchitectureInput {
	return review.ArchitectureInput{
		RawText:  raw,
		Sections: Sections(raw),
		Diagrams: Diagrams(raw),
	}
}

// Sections returns the document's sections in order. Text before the first
// heading belongs to no section and is dropped. Headings do not nest.
func Sections(text string) []review.Section {
	sections := []review.Section{}
	var cur *review.Section
	var content strings.Builder

	flush := func() {
		if cur != nil {
			cur.Content = content.String()
			sections = append(sections, *cur)
		}
		content.Reset()
	}

	for _, line := range strings.Split(text, "\n") {
		if m := headingRe.FindStringSubmatch(line); m != nil {
			flush()
			cur = &review.Section{Title: strings.TrimSpace(m[2])}
			continue
		}
		if cur != nil {
			content.WriteString(line)
			content.WriteByte('\n')
		}
	}
	flush()
	return sections
}

// Diagrams returns every fenced block that classifies as a known diagram
// notation, in document order.
func Diagrams(text string) []review.Diagram {
	diagrams := []review.Diagram{}
	for _, m := range fenceRe.FindAllStringSubmatch(text, -1) {
		lang := strings.ToLower(m[1])
		t := Classify(lang, m[2])
		if t == review.DiagramUnknown {
			continue
		}
		diagrams = append(diagrams, review.Diagram{Type: t, Raw: strings.TrimSpace(m[2])})
	}
	return diagrams
}
