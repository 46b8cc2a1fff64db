package handler

import (
	"github.com/gofiber/fiber/v2"

	"career-counsel/internal/middleware"
)

// Handlers groups everything mounted under /api.
type Handlers struct {
	Assessment *AssessmentHandler
	Results    *ResultsHandler
	College    *CollegeHandler
	Health     *HealthHandler
}

// RegisterRoutes mounts the API. visitor resolves the anonymous visitor for
// every /api route.
func RegisterRoutes(app *fiber.App, h Handlers, visitor fiber.Handler) {
	vm := middleware.NewValidationMiddleware()

	if h.Health != nil {
		app.Get("/health", h.Health.Health)
	}

	apiGroup := app.Group("/api", visitor)

	assessmentGroup := apiGroup.Group("/assessment")
	assessmentGroup.Get("/questions", h.Assessment.GetQuestions)
	assessmentGroup.Post("/flows", h.Assessment.StartFlow)

	flowGroup := assessmentGroup.Group("/flows/:flowID", vm.ValidateFlowID())
	flowGroup.Get("/", h.Assessment.GetFlow)
	flowGroup.Put("/basic-info", h.Assessment.UpdateBasicInfo)
	flowGroup.Post("/basic-info/submit", h.Assessment.SubmitBasicInfo)
	flowGroup.Put("/answers", h.Assessment.RecordAnswer)
	flowGroup.Post("/next", h.Assessment.Next)
	flowGroup.Post("/previous", h.Assessment.Previous)
	flowGroup.Post("/submit", h.Assessment.Submit)

	apiGroup.Get("/results/:track", vm.ValidateTrack(), h.Results.GetResults)

	apiGroup.Post("/college/intake/validate", h.College.ValidateIntake)
}
