package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/skillpath/api/http/presenter"
	"github.com/artem13815/skillpath/pkg/matching"
)

// JobDetailsHandler serves per-job missing-skill reports with course
// recommendations.
type JobDetailsHandler struct {
	uc matching.UseCase
}

func NewJobDetailsHandler(uc matching.UseCase) *JobDetailsHandler {
	return &JobDetailsHandler{uc: uc}
}

type jobDetailsRequest struct {
	UserSkills []string `json:"user_skills"`
	JobIDs     []int    `json:"job_ids"`
	JobID      int      `json:"job_id"`
}

// Details resolves one or more job ids and reports, for each, the job
// fields plus the user's missing skills with recommended courses.
// Unknown ids get a per-item error instead of failing the request.
// @Summary Job details with missing skills and course recommendations
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   input body jobDetailsRequest true "User skills plus job_ids (or a single job_id)"
// @Success 200 {array} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /job_details [post]
func (h *JobDetailsHandler) Details(c *fiber.Ctx) error {
	var req jobDetailsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}
	ids := req.JobIDs
	if len(ids) == 0 && req.JobID != 0 {
		ids = []int{req.JobID}
	}
	if len(ids) == 0 {
		return presenter.Error(c, http.StatusBadRequest, "No job id provided")
	}

	details := h.uc.JobDetails(req.UserSkills, ids)
	out := make([]fiber.Map, 0, len(details))
	for _, d := range details {
		if d.Job == nil {
			out = append(out, fiber.Map{"job_id": d.JobID, "error": "Job not found"})
			continue
		}
		out = append(out, fiber.Map{
			"job": fiber.Map{
				"id":          strconv.Itoa(d.Job.ID),
				"title":       d.Job.Title,
				"company":     d.Job.Company,
				"location":    d.Job.Location,
				"description": d.Job.Description,
			},
			"missing_skills_courses": d.Courses,
		})
	}
	return presenter.JSON(c, http.StatusOK, out)
}
