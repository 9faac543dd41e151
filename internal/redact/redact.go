package redact

import (
	"regexp"
)

const placeholder = "[REDACTED]"

type rule struct {
	re   *regexp.Regexp
	repl string
}

// rules are regex heuristics for common secret types. Architecture documents
// tend to carry them in connection strings and sample config blocks.
var rules = []rule{
	// Credentials embedded in connection URLs keep the scheme and host
	{regexp.MustCompile(`(?i)\b([a-z][a-z0-9+.-]*://)[^\s:/@]+:[^\s/@]+@`), "${1}" + placeholder + "@"},
	// Generic API keys (long hex/base64 strings after common key patterns)
	{regexp.MustCompile(`(?i)(api[_-]?key|apikey|api[_-]?secret)\s*[:=]\s*["']?([A-Za-z0-9/+=_-]{20,})["']?`), placeholder},
	// AWS access key IDs
	{regexp.MustCompile(`AKIA[0-9A-Z]{16}`), placeholder},
	{regexp.MustCompile(`(?i)(aws[_-]?secret[_-]?access[_-]?key)\s*[:=]\s*["']?([A-Za-z0-9/+=]{40})["']?`), placeholder},
	// Generic secrets/tokens/passwords in assignments
	{regexp.MustCompile(`(?i)(secret|token|password|passwd|credential)\s*[:=]\s*["']([^"']{8,})["']`), placeholder},
	{regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9._-]{20,}`), placeholder},
	// JWTs
	{regexp.MustCompile(`eyJ[A-Za-z0-9_-]{10,}\.eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`), placeholder},
	{regexp.MustCompile(`-----BEGIN\s+(RSA\s+|EC\s+|OPENSSH\s+)?PRIVATE KEY-----`), placeholder},
	// Provider tokens
	{regexp.MustCompile(`gh[pousr]_[A-Za-z0-9_]{36,}`), placeholder},
	{regexp.MustCompile(`xox[bporas]-[A-Za-z0-9-]{10,}`), placeholder},
	{regexp.MustCompile(`gsk_[A-Za-z0-9]{20,}`), placeholder},
	{regexp.MustCompile(`sk-ant-[A-Za-z0-9_-]{20,}`), placeholder},
	{regexp.MustCompile(`sk-[A-Za-z0-9]{20,}`), placeholder},
	// Generic long hex strings in an assignment
	{regexp.MustCompile(`(?i)(key|secret|token)\s*[:=]\s*["']?[0-9a-f]{32,}["']?`), placeholder},
}

// Secrets replaces detected secrets in text with [REDACTED].
func Secrets(text string) string {
	out, _ := SecretsCount(text)
	return out
}

// SecretsCount is Secrets that also reports how many matches were replaced.
func SecretsCount(text string) (string, int) {
	n := 0
	for _, r := range rules {
		n += len(r.re.FindAllStringIndex(text, -1))
		text = r.re.ReplaceAllString(text, r.repl)
	}
	return text, n
}
