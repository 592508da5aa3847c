package nlp

import (
	"regexp"
	"strings"
)

var (
	leadNonWord  = regexp.MustCompile(`^[^\p{L}\p{N}_]+`)
	trailNonWord = regexp.MustCompile(`[^\p{L}\p{N}_\s]+$`)
	spaceRun     = regexp.MustCompile(`\s+`)
)

// ParseSkillLines tokenizes the raw lines of a skills section into
// individual skill strings. Lines are first re-joined where document
// extraction split one entry across several visual lines, then each
// line is split by its dominant delimiter: the text after the first
// colon on commas outside parentheses, else pipes, else commas outside
// parentheses, else the whole line. boundary reports section-header
// lines that stop continuation merging; nil disables the check.
func ParseSkillLines(lines []string, boundary func(string) bool) []string {
	var tokens []string
	for _, ln := range mergeContinuations(lines, boundary) {
		clean := strings.TrimSpace(ln)
		var parts []string
		switch {
		case strings.Contains(clean, ":"):
			_, rest, _ := strings.Cut(clean, ":")
			parts = SplitOutsideParens(rest)
		case strings.Contains(clean, "|"):
			for _, p := range strings.Split(clean, "|") {
				if p = strings.TrimSpace(p); p != "" {
					parts = append(parts, p)
				}
			}
		case strings.Contains(clean, ","):
			parts = SplitOutsideParens(clean)
		default:
			parts = []string{clean}
		}
		for _, part := range parts {
			tok := leadNonWord.ReplaceAllString(part, "")
			tok = trailNonWord.ReplaceAllString(tok, "")
			tok = strings.TrimSpace(spaceRun.ReplaceAllString(tok, " "))
			if tok != "" {
				tokens = append(tokens, tok)
			}
		}
	}
	return tokens
}

// SplitOutsideParens splits s on commas that are not enclosed in
// parentheses, so "Java (8, 11)" survives as a single part.
func SplitOutsideParens(s string) []string {
	var parts []string
	var buf strings.Builder
	depth := 0
	for _, ch := range s {
		switch ch {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		}
		if ch == ',' && depth == 0 {
			parts = append(parts, strings.TrimSpace(buf.String()))
			buf.Reset()
			continue
		}
		buf.WriteRune(ch)
	}
	if rest := strings.TrimSpace(buf.String()); rest != "" {
		parts = append(parts, rest)
	}
	return parts
}

// mergeContinuations rejoins entries broken by bullets or wrapped
// formatting. A line with a colon absorbs the following lines that have
// no colon of their own and are either comma-separated or single-word,
// stopping at a section boundary; a plain comma line absorbs at most
// one such line.
func mergeContinuations(lines []string, boundary func(string) bool) []string {
	isBoundary := boundary
	if isBoundary == nil {
		isBoundary = func(string) bool { return false }
	}
	var merged []string
	for i := 0; i < len(lines); {
		ln := lines[i]

		if strings.Contains(ln, ":") {
			blk := ln
			j := i + 1
			for j < len(lines) {
				nxt := lines[j]
				if isBoundary(nxt) {
					break
				}
				if !continuation(nxt) {
					break
				}
				blk += " " + nxt
				j++
			}
			merged = append(merged, blk)
			i = j
			continue
		}

		if strings.Contains(ln, ",") && i+1 < len(lines) {
			if nxt := lines[i+1]; continuation(nxt) {
				ln += " " + nxt
				i++
			}
		}
		merged = append(merged, ln)
		i++
	}
	return merged
}

// continuation reports whether a line looks like the tail of a wrapped
// entry: no colon, and either comma-separated or a single word.
func continuation(ln string) bool {
	if strings.Contains(ln, ":") {
		return false
	}
	return strings.Contains(ln, ",") || len(strings.Fields(ln)) == 1
}
