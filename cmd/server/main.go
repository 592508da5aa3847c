// @title         skillpath API
// @version       1.0
// @description   Matches user skill sets against a job catalog, recommends courses for missing skills and extracts recognized skills from uploaded resumes.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	swagger "github.com/gofiber/swagger"
	"github.com/google/uuid"

	_ "github.com/artem13815/skillpath/docs"

	// internal imports
	"github.com/artem13815/skillpath/api/http"
	"github.com/artem13815/skillpath/api/http/handlers"
	"github.com/artem13815/skillpath/pkg/catalog"
	"github.com/artem13815/skillpath/pkg/config"
	"github.com/artem13815/skillpath/pkg/health"
	healthcat "github.com/artem13815/skillpath/pkg/health/checkers"
	"github.com/artem13815/skillpath/pkg/matching"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()

	// Load both datasets once; they stay read-only for the process lifetime.
	cat, err := catalog.Load(cfg.JobsCSV, cfg.CoursesCSV)
	if err != nil {
		log.Fatalf("catalog load: %v", err)
	}
	log.Printf("catalog loaded: %d jobs, %d courses, %d vocabulary entries",
		len(cat.Jobs), len(cat.Courses), len(cat.Vocabulary))

	app := fiber.New(fiber.Config{BodyLimit: cfg.MaxUploadMB << 20})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())
	app.Use(cors.New())

	// Wire dependencies
	matchUC := matching.NewService(cat, cfg.FuzzyThreshold, cfg.MinMatchScore)
	jobsHandler := handlers.NewJobsHandler(matchUC)
	detailsHandler := handlers.NewJobDetailsHandler(matchUC)
	extractHandler := handlers.NewExtractHandler(matchUC, int64(cfg.MaxUploadMB)<<20)

	// Health service: compose checkers
	readiness := health.NewService(healthcat.NewCatalogChecker(cat))
	healthHandler := handlers.NewHealthHandler(readiness)

	// Register routes
	http.Register(app, jobsHandler, detailsHandler, extractHandler, healthHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	log.Printf("HTTP server listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
