package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"career-counsel/internal/domain"
	"career-counsel/internal/dto"
	"career-counsel/internal/logger"
	"career-counsel/internal/middleware"
	"career-counsel/internal/validation"
)

// CollegeHandler validates the college assessment intake
type CollegeHandler struct {
	validator *validation.Validator
}

func NewCollegeHandler() *CollegeHandler {
	return &CollegeHandler{validator: validation.NewValidator()}
}

// ValidateIntake godoc
// @Summary Validate the college intake form
// @Description Checks the form; nothing is submitted anywhere
// @Tags college
// @Accept json
// @Produce json
// @Param request body dto.CollegeIntakeRequest true "Intake form"
// @Success 200 {object} dto.CollegeIntakeResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /college/intake/validate [post]
func (h *CollegeHandler) ValidateIntake(c *fiber.Ctx) error {
	var req dto.CollegeIntakeRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateCollegeIntake(&req); len(errs) > 0 {
		return errs
	}

	logger.Get().Info("College intake validated",
		zap.String("visitor_id", middleware.VisitorID(c)),
		zap.Int("message_words", validation.WordCount(req.InitialMessage)),
	)
	return c.JSON(dto.CollegeIntakeResponse{
		Valid:   true,
		Message: "Your profile is ready for analysis.",
	})
}
