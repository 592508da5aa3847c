package matching

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artem13815/skillpath/pkg/catalog"
	"github.com/artem13815/skillpath/pkg/nlp"
)

func mkJob(id int, title, skills string) catalog.Job {
	j := catalog.Job{ID: id, Title: title, Skills: skills}
	for _, t := range nlp.SkillNames(skills) {
		j.Norm = append(j.Norm, nlp.Normalize(t))
	}
	return j
}

func TestRankJobsOrdersByScore(t *testing.T) {
	jobs := []catalog.Job{
		mkJob(1, "Frontend", "javascript:1.00; css:1.00"),
		mkJob(2, "Backend", "python:1.00; sql:1.00"),
		mkJob(3, "Fullstack", "python:1.00; javascript:1.00; sql:1.00; css:1.00"),
	}

	got := RankJobs([]string{"Python", "SQL"}, jobs, DefaultThreshold, 0.01, 10)

	assert.Len(t, got, 2)
	assert.Equal(t, 2, got[0].Job.ID)
	assert.InDelta(t, 1.0, got[0].Score, 1e-9)
	assert.Equal(t, 3, got[1].Job.ID)
	assert.InDelta(t, 0.5, got[1].Score, 1e-9)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i].Score, got[i-1].Score)
	}
}

func TestRankJobsTruncatesToLimit(t *testing.T) {
	var jobs []catalog.Job
	for i := 1; i <= 12; i++ {
		jobs = append(jobs, mkJob(i, fmt.Sprintf("Job %d", i), "python:1.00"))
	}

	got := RankJobs([]string{"python"}, jobs, DefaultThreshold, 0.01, 10)

	assert.Len(t, got, 10)
	// equal scores keep catalog order
	for i, m := range got {
		assert.Equal(t, i+1, m.Job.ID)
	}
}

func TestRankJobsFiltersBelowMinScore(t *testing.T) {
	jobs := []catalog.Job{
		mkJob(1, "No overlap", "photoshop:1.00"),
	}
	got := RankJobs([]string{"python"}, jobs, DefaultThreshold, 0.01, 10)
	assert.Empty(t, got)
}

func TestRankJobsDoesNotMutateCatalog(t *testing.T) {
	jobs := []catalog.Job{mkJob(1, "Backend", "python:1.00")}
	before := make([]string, len(jobs[0].Norm))
	copy(before, jobs[0].Norm)

	_ = RankJobs([]string{"python"}, jobs, DefaultThreshold, 0.01, 10)

	assert.Equal(t, before, jobs[0].Norm)
}
