package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	JobsCSV        string
	CoursesCSV     string
	FuzzyThreshold int
	MinMatchScore  float64
	MaxUploadMB    int
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:           getEnv("PORT", "8080"),
		JobsCSV:        getEnv("JOBS_CSV", "job_data_clean_v2.0.csv"),
		CoursesCSV:     getEnv("COURSES_CSV", "course_data_clean_v2.0.csv"),
		FuzzyThreshold: getEnvInt("FUZZY_THRESHOLD", 90),
		MinMatchScore:  getEnvFloat("MIN_MATCH_SCORE", 0.01),
		MaxUploadMB:    getEnvInt("MAX_UPLOAD_MB", 15),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
