package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/artem13815/skillpath/pkg/nlp"
)

// Load reads both CSV datasets and builds the catalog. The jobs file is
// UTF-8; the courses file ships in Latin-1 and is decoded accordingly.
func Load(jobsPath, coursesPath string) (*Catalog, error) {
	jobs, err := loadJobs(jobsPath)
	if err != nil {
		return nil, fmt.Errorf("load jobs: %w", err)
	}
	courses, vocab, err := loadCourses(coursesPath)
	if err != nil {
		return nil, fmt.Errorf("load courses: %w", err)
	}

	return New(jobs, courses, vocab), nil
}

func loadJobs(path string) ([]Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	cols, err := readHeader(r, "title", "company", "location", "description", "merged_skills")
	if err != nil {
		return nil, err
	}

	var jobs []Job
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		skills := cols.get(rec, "merged_skills")
		job := Job{
			ID:          len(jobs) + 1,
			Title:       cols.get(rec, "title"),
			Company:     cols.get(rec, "company"),
			Location:    cols.get(rec, "location"),
			Description: cols.get(rec, "description"),
			Skills:      skills,
		}
		for _, t := range nlp.SkillNames(skills) {
			job.Norm = append(job.Norm, nlp.Normalize(t))
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func loadCourses(path string) ([]Course, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.FieldsPerRecord = -1
	cols, err := readHeader(r, "course_title", "course_url", "Unique Skills")
	if err != nil {
		return nil, nil, err
	}

	var courses []Course
	var vocab []string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		c := Course{
			Title:  cols.get(rec, "course_title"),
			URL:    cols.get(rec, "course_url"),
			Skills: cols.get(rec, "Unique Skills"),
		}
		courses = append(courses, c)
		if strings.TrimSpace(c.Skills) != "" {
			vocab = append(vocab, nlp.Normalize(c.Skills))
		}
	}
	return courses, vocab, nil
}

type columns map[string]int

func readHeader(r *csv.Reader, required ...string) (columns, error) {
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(columns, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, errors.New("missing column: " + name)
		}
	}
	return cols, nil
}

func (c columns) get(rec []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}
