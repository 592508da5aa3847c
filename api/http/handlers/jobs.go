package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/skillpath/api/http/presenter"
	"github.com/artem13815/skillpath/pkg/matching"
)

// JobsHandler serves job matching requests.
type JobsHandler struct {
	uc matching.UseCase
}

func NewJobsHandler(uc matching.UseCase) *JobsHandler { return &JobsHandler{uc: uc} }

type matchJobsRequest struct {
	Skills []string `json:"skills"`
}

type jobMatchResponse struct {
	ID         int     `json:"id"`
	Title      string  `json:"title"`
	Company    string  `json:"company"`
	Location   string  `json:"location"`
	MatchScore float64 `json:"match_score"`
}

// Match ranks catalog jobs against the submitted skill list.
// @Summary Find jobs matching a skill set
// @Tags    jobs
// @Accept  json
// @Produce json
// @Param   input body matchJobsRequest true "User skills"
// @Success 200 {array} jobMatchResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /jobs [post]
func (h *JobsHandler) Match(c *fiber.Ctx) error {
	var req matchJobsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}
	if len(req.Skills) == 0 {
		return presenter.Error(c, http.StatusBadRequest, "No skills provided")
	}

	matches := h.uc.MatchJobs(req.Skills)
	out := make([]jobMatchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, jobMatchResponse{
			ID:         m.Job.ID,
			Title:      m.Job.Title,
			Company:    m.Job.Company,
			Location:   m.Job.Location,
			MatchScore: m.Score,
		})
	}
	return presenter.JSON(c, http.StatusOK, out)
}
