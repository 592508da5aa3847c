package nlp

import (
	"strconv"
	"strings"
)

// WeightedSkill is a skill name paired with a relevance weight, parsed
// from a "name:score" catalog segment.
type WeightedSkill struct {
	Name  string
	Score float64
}

// SkillNames splits a semicolon-delimited "skill:score" string into raw
// skill names: "asp net:1.00; angular js:1.00" -> ["asp net", "angular js"].
// A segment without a colon contributes the whole segment.
func SkillNames(text string) []string {
	var tokens []string
	for _, seg := range strings.Split(text, ";") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		name, _, _ := strings.Cut(seg, ":")
		tokens = append(tokens, strings.TrimSpace(name))
	}
	return tokens
}

// WeightedSkills parses "name:score" segments into ordered pairs.
// Segments without a colon or with a non-numeric score are dropped.
// A repeated name keeps its first position and takes the last score.
func WeightedSkills(text string) []WeightedSkill {
	var out []WeightedSkill
	index := make(map[string]int)
	for _, seg := range strings.Split(text, ";") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		name, raw, ok := strings.Cut(seg, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		score, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			continue
		}
		if i, seen := index[name]; seen {
			out[i].Score = score
			continue
		}
		index[name] = len(out)
		out = append(out, WeightedSkill{Name: name, Score: score})
	}
	return out
}
