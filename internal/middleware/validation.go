package middleware

import (
	"github.com/gofiber/fiber/v2"

	"career-counsel/internal/validation"
)

const (
	ValidatedFlowIDKey = "validated_flow_id"
	ValidatedTrackKey  = "validated_track"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateFlowID validates the :flowID path parameter
func (vm *ValidationMiddleware) ValidateFlowID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		flowID := c.Params("flowID")
		if errors := vm.validator.ValidateFlowID(flowID); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		c.Locals(ValidatedFlowIDKey, flowID)
		return c.Next()
	}
}

// ValidateTrack validates the :track path parameter of the results routes
func (vm *ValidationMiddleware) ValidateTrack() fiber.Handler {
	return func(c *fiber.Ctx) error {
		track := c.Params("track")
		if errors := vm.validator.ValidateTrack(track); len(errors) > 0 {
			return errors
		}

		c.Locals(ValidatedTrackKey, track)
		return c.Next()
	}
}
