package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/skillpath/pkg/catalog"
	"github.com/artem13815/skillpath/pkg/extract"
)

func newTestService() UseCase {
	cat := catalog.New(
		[]catalog.Job{
			mkJob(1, "Backend Developer", "python:0.90; sql:0.80"),
			mkJob(2, "Data Analyst", "sql:1.00; excel:0.70"),
		},
		testCourses,
		[]string{"java sql python", "aws"},
	)
	return NewService(cat, DefaultThreshold, 0.01)
}

func TestServiceMatchJobs(t *testing.T) {
	svc := newTestService()

	got := svc.MatchJobs([]string{"Python", "SQL"})

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Job.ID)
	assert.InDelta(t, 1.0, got[0].Score, 1e-9)
}

func TestServiceJobDetails(t *testing.T) {
	svc := newTestService()

	got := svc.JobDetails([]string{"python"}, []int{2, 99})

	require.Len(t, got, 2)

	require.NotNil(t, got[0].Job)
	assert.Equal(t, "Data Analyst", got[0].Job.Title)
	assert.Equal(t, []string{
		"sql (1.00) - <a href='https://courses.example/sql' target='_blank'>SQL for Analysts</a>",
		"excel (0.70) - No course recommended",
	}, got[0].Courses)

	assert.Nil(t, got[1].Job)
	assert.Equal(t, 99, got[1].JobID)
}

func TestServiceExtractSkillsUnsupportedFormat(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.ExtractSkills("resume.txt", []byte("plain text"))

	assert.ErrorIs(t, err, extract.ErrUnsupportedFormat)
}
