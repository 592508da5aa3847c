package matching

import (
	"regexp"
	"strings"
	"unicode/utf8"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/artem13815/skillpath/pkg/nlp"
)

// geometric shapes block; checkbox/bullet glyphs leak out of resume text
var glyphs = regexp.MustCompile(`[\x{25A0}-\x{25FF}]`)

// KnownSkills filters raw resume tokens down to the ones recognized in
// the vocabulary: short normalized tokens by exact membership, long
// ones by best partial-ratio >= threshold. Duplicates (by normalized
// form) collapse to the first raw spelling, and stray glyph characters
// are scrubbed from the survivors.
func KnownSkills(tokens []string, vocabulary []string, threshold int) []string {
	vocabSet := make(map[string]struct{}, len(vocabulary))
	for _, v := range vocabulary {
		vocabSet[v] = struct{}{}
	}

	var matched []string
	for _, tok := range tokens {
		norm := nlp.Normalize(tok)
		if utf8.RuneCountInString(norm) < minLongToken {
			if _, ok := vocabSet[norm]; ok {
				matched = append(matched, tok)
			}
			continue
		}
		for _, v := range vocabulary {
			if fuzzy.PartialRatio(norm, v) >= threshold {
				matched = append(matched, tok)
				break
			}
		}
	}

	seen := make(map[string]struct{}, len(matched))
	out := make([]string, 0, len(matched))
	for _, m := range matched {
		k := nlp.Normalize(m)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, strings.TrimSpace(glyphs.ReplaceAllString(m, "")))
	}
	return out
}
