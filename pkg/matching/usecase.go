package matching

import (
	"github.com/artem13815/skillpath/pkg/catalog"
	"github.com/artem13815/skillpath/pkg/extract"
	"github.com/artem13815/skillpath/pkg/nlp"
)

// UseCase exposes the matching scenarios backed by the loaded catalogs.
type UseCase interface {
	// MatchJobs ranks catalog jobs against the user's skills (top 10).
	MatchJobs(skills []string) []JobMatch
	// JobDetails resolves each job id and reports the user's missing
	// skills with course recommendations. Unknown ids yield an entry
	// with Job == nil.
	JobDetails(userSkills []string, jobIDs []int) []JobDetail
	// ExtractSkills pulls the skills section out of a resume document
	// and returns the recognized skills. found is false when no
	// section could be located.
	ExtractSkills(filename string, data []byte) (found bool, skills []string, err error)
}

// JobDetail is the per-id result of a job details request.
type JobDetail struct {
	JobID   int
	Job     *catalog.Job
	Courses []string
}

type service struct {
	cat       *catalog.Catalog
	threshold int
	minScore  float64
	limit     int
}

// NewService wires the use case over an immutable catalog. threshold is
// the partial-ratio cutoff, minScore the lowest job score worth
// returning.
func NewService(cat *catalog.Catalog, threshold int, minScore float64) UseCase {
	return &service{
		cat:       cat,
		threshold: threshold,
		minScore:  minScore,
		limit:     10,
	}
}

func (s *service) MatchJobs(skills []string) []JobMatch {
	return RankJobs(skills, s.cat.Jobs, s.threshold, s.minScore, s.limit)
}

func (s *service) JobDetails(userSkills []string, jobIDs []int) []JobDetail {
	out := make([]JobDetail, 0, len(jobIDs))
	for _, id := range jobIDs {
		job, ok := s.cat.JobByID(id)
		if !ok {
			out = append(out, JobDetail{JobID: id})
			continue
		}
		courses := RecommendCourses(userSkills, job.Skills, s.cat.Courses, s.threshold)
		out = append(out, JobDetail{JobID: id, Job: &job, Courses: courses})
	}
	return out
}

func (s *service) ExtractSkills(filename string, data []byte) (bool, []string, error) {
	lines, err := extract.SectionLines(filename, data)
	if err != nil {
		return false, nil, err
	}
	if len(lines) == 0 {
		return false, []string{}, nil
	}
	tokens := nlp.ParseSkillLines(lines, extract.IsBoundary)
	return true, KnownSkills(tokens, s.cat.Vocabulary, s.threshold), nil
}
