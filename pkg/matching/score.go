package matching

import (
	"unicode/utf8"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/artem13815/skillpath/pkg/nlp"
)

// minLongToken is the rune length at which fuzzy comparison kicks in;
// shorter tokens are only ever matched exactly.
const minLongToken = 4

// DefaultThreshold is the partial-ratio cutoff (0-100) used across the
// service for fuzzy skill comparison.
const DefaultThreshold = 90

// MatchScore computes how much of a job's skill set the user covers:
// the fraction of distinct job tokens matched either exactly (short
// tokens) or by partial-ratio >= threshold (long tokens). This is an
// asymmetric coverage of job tokens by user tokens, not a Jaccard
// index. Both inputs must already be normalized. Result is in [0, 1];
// an empty job token set scores 0.
func MatchScore(userNorm, jobNorm []string, threshold int) float64 {
	userShort, userLong := partition(userNorm)
	jobShort, jobLong := partition(jobNorm)

	matched := 0
	for t := range jobShort {
		if _, ok := userShort[t]; ok {
			matched++
		}
	}
	if len(userLong) > 0 {
		for t := range jobLong {
			if bestPartialRatio(t, userLong) >= threshold {
				matched++
			}
		}
	}

	total := len(jobShort) + len(jobLong)
	if total == 0 {
		return 0.0
	}
	return float64(matched) / float64(total)
}

// SkillPresent reports whether target is already covered by one of the
// user's skills: exact equality for short tokens, partial-ratio >=
// cutoff for long ones. All comparisons run on normalized forms.
func SkillPresent(target string, userSkills []string, cutoff int) bool {
	j := nlp.Normalize(target)
	for _, skill := range userSkills {
		u := nlp.Normalize(skill)
		if utf8.RuneCountInString(u) < minLongToken {
			// TODO: a short user token ends the scan here even when it
			// does not match; the remaining skills should still be checked.
			return u == j
		}
		if fuzzy.PartialRatio(u, j) >= cutoff {
			return true
		}
	}
	return false
}

// partition splits normalized tokens into short and long sets,
// collapsing duplicates.
func partition(tokens []string) (short, long map[string]struct{}) {
	short = make(map[string]struct{})
	long = make(map[string]struct{})
	for _, t := range tokens {
		if utf8.RuneCountInString(t) < minLongToken {
			short[t] = struct{}{}
		} else {
			long[t] = struct{}{}
		}
	}
	return short, long
}

func bestPartialRatio(token string, candidates map[string]struct{}) int {
	best := 0
	for c := range candidates {
		if r := fuzzy.PartialRatio(token, c); r > best {
			best = r
		}
	}
	return best
}
