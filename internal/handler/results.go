package handler

import (
	"github.com/gofiber/fiber/v2"

	"career-counsel/internal/domain"
	"career-counsel/internal/middleware"
	"career-counsel/internal/service"
)

// ResultsHandler serves the results pages
type ResultsHandler struct {
	service service.ResultsService
}

// NewResultsHandler creates a new ResultsHandler instance
func NewResultsHandler(service service.ResultsService) *ResultsHandler {
	return &ResultsHandler{service: service}
}

// GetResults godoc
// @Summary Get assessment results
// @Description Returns the analysis for the session named by the query, else the visitor's last session,
// @Description else sample results. Upstream failures fall back to sample results.
// @Tags results
// @Produce json
// @Param track path string true "Results track" Enums(school, college)
// @Param session_id query string false "Analysis session ID"
// @Success 200 {object} dto.ResultsView
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /results/{track} [get]
func (h *ResultsHandler) GetResults(c *fiber.Ctx) error {
	raw, ok := c.Locals(middleware.ValidatedTrackKey).(string)
	if !ok {
		raw = c.Params("track")
	}
	track, err := domain.ParseTrack(raw)
	if err != nil {
		return err
	}

	view, err := h.service.GetResults(c.Context(), middleware.VisitorID(c), track, c.Query("session_id"))
	if err != nil {
		return err
	}
	return c.JSON(view)
}
