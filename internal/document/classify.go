package document

import (
	"strings"

	"github.com/dshills/archon/internal/review"
)

// A classifyRule maps a fenced block to a diagram type when match holds.
type classifyRule struct {
	name  string
	match func(lang, body string) bool
	typ   review.DiagramType
}

// classifyRules are evaluated top to bottom and the first match wins.
// Explicit language tags always take priority over content sniffing.
//
//	priority  rule                                   result
//	1         tag is plantuml or puml                plantuml
//	2         tag is mermaid                         mermaid
//	3         body contains @startuml                plantuml
//	4         trimmed body starts graph or           mermaid
//	          sequenceDiagram
//	-         anything else                          unknown (dropped)
var classifyRules = []classifyRule{
	{"plantuml-tag", func(lang, _ string) bool { return lang == "plantuml" || lang == "puml" }, review.DiagramPlantUML},
	{"mermaid-tag", func(lang, _ string) bool { return lang == "mermaid" }, review.DiagramMermaid},
	{"plantuml-body", func(_, body string) bool { return strings.Contains(body, "@startuml") }, review.DiagramPlantUML},
	{"mermaid-body", func(_, body string) bool {
		b := strings.TrimSpace(body)
		return strings.HasPrefix(b, "graph") || strings.HasPrefix(b, "sequenceDiagram")
	}, review.DiagramMermaid},
}

// Classify returns the diagram type of a fenced block given its lowercased
// language tag and body.
func Classify(lang, body string) review.DiagramType {
	for _, r := range classifyRules {
		if r.match(lang, body) {
			return r.typ
		}
	}
	return review.DiagramUnknown
}
