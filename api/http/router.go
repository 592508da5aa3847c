package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/skillpath/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, jobs *handlers.JobsHandler, details *handlers.JobDetailsHandler, extract *handlers.ExtractHandler, health *handlers.HealthHandler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	// Matching pipeline
	v1.Post("/jobs", jobs.Match)
	v1.Post("/job_details", details.Details)
	v1.Post("/extract_skills", extract.Extract)
}
