package matching

import (
	"fmt"
	"regexp"

	"github.com/artem13815/skillpath/pkg/catalog"
	"github.com/artem13815/skillpath/pkg/nlp"
)

// RecommendCourses lists the job's skills the user is missing, each
// with its weight and a link to the first catalog course whose skill
// string mentions it. Output keeps the parse order of jobSkills.
func RecommendCourses(userSkills []string, jobSkills string, courses []catalog.Course, cutoff int) []string {
	var missing []nlp.WeightedSkill
	for _, ws := range nlp.WeightedSkills(jobSkills) {
		if !SkillPresent(ws.Name, userSkills, cutoff) {
			missing = append(missing, ws)
		}
	}

	recommendations := make([]string, 0, len(missing))
	for _, ws := range missing {
		// Word-boundary, case-insensitive substring search over the
		// course haystacks.
		pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(ws.Name) + `\b`)
		course, ok := firstCourse(courses, pattern)
		if !ok {
			recommendations = append(recommendations,
				fmt.Sprintf("%s (%.2f) - No course recommended", ws.Name, ws.Score))
			continue
		}
		recommendations = append(recommendations,
			fmt.Sprintf("%s (%.2f) - <a href='%s' target='_blank'>%s</a>", ws.Name, ws.Score, course.URL, course.Title))
	}
	return recommendations
}

func firstCourse(courses []catalog.Course, pattern *regexp.Regexp) (catalog.Course, bool) {
	for _, c := range courses {
		if pattern.MatchString(c.Skills) {
			return c, true
		}
	}
	return catalog.Course{}, false
}
