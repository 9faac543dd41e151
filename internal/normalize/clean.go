package normalize

import (
	"regexp"
	"strings"
)

var (
	thinkRe      = regexp.MustCompile(`(?is)<think>.*?</think>`)
	preambleRe   = regexp.MustCompile(`(?i)^(?:Here(?:'?s|\s+is)?\s+(?:the\s+)?(?:JSON|response|architecture|report)[\s:]*)`)
	openFenceRe  = regexp.MustCompile("^```(?:json)?\\n?")
	closeFenceRe = regexp.MustCompile("\\n?```\\s*$")
)

// Clean strips the wrapping that chat models put around a JSON payload:
// reasoning blocks, a conversational preamble and a Markdown code fence.
// Clean is idempotent on already-clean text.
func Clean(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(thinkRe.ReplaceAllString(s, ""))
	s = strings.TrimSpace(preambleRe.ReplaceAllString(s, ""))
	if strings.HasPrefix(s, "```") {
		s = openFenceRe.ReplaceAllString(s, "")
		s = closeFenceRe.ReplaceAllString(s, "")
	}
	return strings.TrimSpace(s)
}
