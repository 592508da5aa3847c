package http

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/skillpath/api/http/handlers"
	"github.com/artem13815/skillpath/pkg/catalog"
	"github.com/artem13815/skillpath/pkg/health"
	healthcat "github.com/artem13815/skillpath/pkg/health/checkers"
	"github.com/artem13815/skillpath/pkg/matching"
	"github.com/artem13815/skillpath/pkg/nlp"
)

func newTestApp() *fiber.App {
	mkJob := func(id int, title, company, location, skills string) catalog.Job {
		j := catalog.Job{ID: id, Title: title, Company: company, Location: location, Skills: skills}
		for _, t := range nlp.SkillNames(skills) {
			j.Norm = append(j.Norm, nlp.Normalize(t))
		}
		return j
	}
	cat := catalog.New(
		[]catalog.Job{
			mkJob(1, "Backend Developer", "Acme", "Berlin", "python:0.90; sql:0.80"),
			mkJob(2, "Designer", "Globex", "Remote", "photoshop:1.00"),
		},
		[]catalog.Course{
			{Title: "SQL for Analysts", URL: "https://courses.example/sql", Skills: "sql; databases"},
		},
		[]string{"python sql java", "aws"},
	)
	uc := matching.NewService(cat, matching.DefaultThreshold, 0.01)

	app := fiber.New()
	Register(app,
		handlers.NewJobsHandler(uc),
		handlers.NewJobDetailsHandler(uc),
		handlers.NewExtractHandler(uc, 15<<20),
		handlers.NewHealthHandler(health.NewService(healthcat.NewCatalogChecker(cat))),
	)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, v))
}

func TestMatchJobsEndpoint(t *testing.T) {
	app := newTestApp()

	t.Run("no skills provided", func(t *testing.T) {
		resp := postJSON(t, app, "/api/v1/jobs", `{"skills":[]}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("returns ranked jobs", func(t *testing.T) {
		resp := postJSON(t, app, "/api/v1/jobs", `{"skills":["Python","SQL"]}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out []map[string]any
		decodeBody(t, resp, &out)
		require.Len(t, out, 1)
		assert.Equal(t, float64(1), out[0]["id"])
		assert.Equal(t, "Backend Developer", out[0]["title"])
		assert.InDelta(t, 1.0, out[0]["match_score"].(float64), 1e-9)
	})

	t.Run("no matches is an empty list", func(t *testing.T) {
		resp := postJSON(t, app, "/api/v1/jobs", `{"skills":["basket weaving"]}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out []map[string]any
		decodeBody(t, resp, &out)
		assert.Empty(t, out)
	})
}

func TestJobDetailsEndpoint(t *testing.T) {
	app := newTestApp()

	t.Run("no job id", func(t *testing.T) {
		resp := postJSON(t, app, "/api/v1/job_details", `{"user_skills":["python"]}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("known and unknown ids", func(t *testing.T) {
		resp := postJSON(t, app, "/api/v1/job_details", `{"user_skills":["python"],"job_ids":[1,99]}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out []map[string]any
		decodeBody(t, resp, &out)
		require.Len(t, out, 2)

		job := out[0]["job"].(map[string]any)
		assert.Equal(t, "1", job["id"])
		assert.Equal(t, "Backend Developer", job["title"])
		courses := out[0]["missing_skills_courses"].([]any)
		require.Len(t, courses, 1)
		assert.Equal(t, "sql (0.80) - <a href='https://courses.example/sql' target='_blank'>SQL for Analysts</a>", courses[0])

		assert.Equal(t, "Job not found", out[1]["error"])
		assert.Equal(t, float64(99), out[1]["job_id"])
	})

	t.Run("single job_id accepted", func(t *testing.T) {
		resp := postJSON(t, app, "/api/v1/job_details", `{"user_skills":[],"job_id":2}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out []map[string]any
		decodeBody(t, resp, &out)
		require.Len(t, out, 1)
		assert.NotNil(t, out[0]["job"])
	})
}

func TestExtractSkillsEndpoint(t *testing.T) {
	app := newTestApp()

	postResume := func(t *testing.T, filename string, data []byte) *http.Response {
		t.Helper()
		var body bytes.Buffer
		w := multipart.NewWriter(&body)
		fw, err := w.CreateFormFile("resume", filename)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/extract_skills", &body)
		req.Header.Set("Content-Type", w.FormDataContentType())
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp
	}

	t.Run("missing file", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/extract_skills", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unsupported file type", func(t *testing.T) {
		resp := postResume(t, "resume.txt", []byte("text"))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("docx resume with skills section", func(t *testing.T) {
		doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Technical Skills</w:t></w:r></w:p>
    <w:p><w:r><w:t>Languages: Python, Fortran</w:t></w:r></w:p>
    <w:p><w:r><w:t>Education</w:t></w:r></w:p>
  </w:body>
</w:document>`
		resp := postResume(t, "resume.docx", buildDocxArchive(t, doc))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out map[string]any
		decodeBody(t, resp, &out)
		assert.Equal(t, true, out["skills_section_found"])
		assert.Equal(t, []any{"Python"}, out["skills"])
	})

	t.Run("docx resume without skills section", func(t *testing.T) {
		doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Just a cover letter</w:t></w:r></w:p>
  </w:body>
</w:document>`
		resp := postResume(t, "resume.docx", buildDocxArchive(t, doc))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out map[string]any
		decodeBody(t, resp, &out)
		assert.Equal(t, false, out["skills_section_found"])
		assert.Equal(t, []any{}, out["skills"])
	})
}

func TestHealthEndpoints(t *testing.T) {
	app := newTestApp()

	for _, path := range []string{"/api/v1/health", "/api/v1/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func buildDocxArchive(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
