package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "job_data_clean_v2.0.csv", cfg.JobsCSV)
	assert.Equal(t, "course_data_clean_v2.0.csv", cfg.CoursesCSV)
	assert.Equal(t, 90, cfg.FuzzyThreshold)
	assert.InDelta(t, 0.01, cfg.MinMatchScore, 1e-9)
	assert.Equal(t, 15, cfg.MaxUploadMB)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("FUZZY_THRESHOLD", "85")
	t.Setenv("MIN_MATCH_SCORE", "0.2")
	t.Setenv("MAX_UPLOAD_MB", "not-a-number")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 85, cfg.FuzzyThreshold)
	assert.InDelta(t, 0.2, cfg.MinMatchScore, 1e-9)
	// invalid values fall back to defaults
	assert.Equal(t, 15, cfg.MaxUploadMB)
}
