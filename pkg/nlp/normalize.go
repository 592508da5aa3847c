package nlp

import (
	"regexp"
	"strings"
)

var punct = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)

// Normalize lowercases a token and deletes punctuation (everything that
// is neither a word character nor whitespace). Internal whitespace is
// preserved as-is; only the edges are trimmed. Idempotent:
// Normalize("C++ Developer") == "c developer".
func Normalize(s string) string {
	s = punct.ReplaceAllString(s, "")
	return strings.ToLower(strings.TrimSpace(s))
}
