package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/skillpath/api/http/presenter"
	"github.com/artem13815/skillpath/pkg/matching"
)

// ExtractHandler serves resume skill extraction.
type ExtractHandler struct {
	uc matching.UseCase
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewExtractHandler(uc matching.UseCase, maxBytes int64) *ExtractHandler {
	return &ExtractHandler{uc: uc, maxBytes: maxBytes}
}

type extractResponse struct {
	SkillsSectionFound bool     `json:"skills_section_found"`
	Skills             []string `json:"skills"`
}

// Extract parses an uploaded resume (PDF/DOCX), locates its skills
// section and returns the skills recognized against the course catalog
// vocabulary.
// @Summary Extract recognized skills from a resume
// @Tags    skills
// @Accept  multipart/form-data
// @Produce json
// @Param   resume formData file true "Resume file (PDF or DOCX)"
// @Success 200 {object} extractResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /extract_skills [post]
func (h *ExtractHandler) Extract(c *fiber.Ctx) error {
	fh, err := c.FormFile("resume")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "No resume file provided")
	}
	if fh.Filename == "" {
		return presenter.Error(c, http.StatusBadRequest, "Empty filename")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".pdf" && ext != ".docx" {
		return presenter.Error(c, http.StatusBadRequest, "Unsupported file type")
	}

	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	found, skills, err := h.uc.ExtractSkills(fh.Filename, data)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("failed to read resume: %v", err))
	}
	if skills == nil {
		skills = []string{}
	}
	return presenter.JSON(c, http.StatusOK, extractResponse{
		SkillsSectionFound: found,
		Skills:             skills,
	})
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
