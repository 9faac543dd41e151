package normalize

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const snippetLen = 200

// ParseError reports a completion that could not be decoded as the expected
// shape, even after control-character repair.
type ParseError struct {
	// Context names the shape being decoded, e.g. "ArchitectureModel".
	Context string
	// Snippet is the start of the cleaned text.
	Snippet string
	Cause   error
	// RepairCause is set when a repair was attempted and also failed.
	RepairCause error
}

func (e *ParseError) Error() string {
	if e.RepairCause != nil {
		return fmt.Sprintf("failed to parse %s from model response: %v (after repair: %v)", e.Context, e.Cause, e.RepairCause)
	}
	return fmt.Sprintf("failed to parse %s from model response: %v", e.Context, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// ParseAs decodes cleaned text into a T. When decoding fails because a string
// literal holds a raw control character, the literals are repaired and the
// decode is retried once. Failures are returned as *ParseError; no default
// value is ever substituted.
func ParseAs[T any](cleaned, context string) (T, error) {
	var v T
	err := json.Unmarshal([]byte(cleaned), &v)
	if err == nil {
		return v, nil
	}
	perr := &ParseError{Context: context, Snippet: snippet(cleaned), Cause: err}
	if !isControlCharError(err) {
		return v, perr
	}

	var repaired T
	if rerr := json.Unmarshal(Repair([]byte(cleaned)), &repaired); rerr != nil {
		perr.RepairCause = rerr
		return v, perr
	}
	return repaired, nil
}

// Decode is Clean followed by ParseAs.
func Decode[T any](raw, context string) (T, error) {
	return ParseAs[T](Clean(raw), context)
}

func isControlCharError(err error) bool {
	var syn *json.SyntaxError
	return errors.As(err, &syn) && strings.Contains(syn.Error(), "in string literal")
}

// Repair rewrites raw control characters inside JSON string literals: newline,
// carriage return and tab become their escapes, other bytes below 0x20 and
// DEL are dropped. Bytes outside string literals are left alone.
func Repair(data []byte) []byte {
	out := make([]byte, 0, len(data)+16)
	inString, escaped := false, false
	for _, c := range data {
		if !inString {
			if c == '"' {
				inString = true
			}
			out = append(out, c)
			continue
		}
		switch {
		case escaped:
			escaped = false
			out = append(out, c)
		case c == '\\':
			escaped = true
			out = append(out, c)
		case c == '"':
			inString = false
			out = append(out, c)
		case c == '\n':
			out = append(out, '\\', 'n')
		case c == '\r':
			out = append(out, '\\', 'r')
		case c == '\t':
			out = append(out, '\\', 't')
		case c < 0x20 || c == 0x7F:
			// dropped
		default:
			out = append(out, c)
		}
	}
	return out
}

func snippet(s string) string {
	if len(s) <= snippetLen {
		return s
	}
	i := snippetLen
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return s[:i] + "..."
}
