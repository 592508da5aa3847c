package matching

import (
	"sort"

	"github.com/artem13815/skillpath/pkg/catalog"
	"github.com/artem13815/skillpath/pkg/nlp"
)

// JobMatch pairs a catalog job with its computed score. Scores live on
// these request-scoped pairs; the shared catalog is never written to.
type JobMatch struct {
	Job   catalog.Job
	Score float64
}

// RankJobs scores every job against the user's skills and returns up to
// limit jobs with score > minScore, best first. The sort is stable, so
// ties keep catalog order. User skills are normalized once up front.
func RankJobs(userSkills []string, jobs []catalog.Job, threshold int, minScore float64, limit int) []JobMatch {
	userNorm := make([]string, 0, len(userSkills))
	for _, s := range userSkills {
		userNorm = append(userNorm, nlp.Normalize(s))
	}

	var matches []JobMatch
	for _, job := range jobs {
		score := MatchScore(userNorm, job.Norm, threshold)
		if score > minScore {
			matches = append(matches, JobMatch{Job: job, Score: score})
		}
	}
	sort.SliceStable(matches, func(i, k int) bool { return matches[i].Score > matches[k].Score })
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
