package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"career-counsel/internal/domain"
	"career-counsel/internal/dto"
	"career-counsel/internal/logger"
	"career-counsel/internal/middleware"
	"career-counsel/internal/service"
	"career-counsel/internal/validation"
)

// AssessmentHandler handles the school assessment flow
type AssessmentHandler struct {
	service   service.AssessmentService
	validator *validation.Validator
}

// NewAssessmentHandler creates a new AssessmentHandler instance
func NewAssessmentHandler(service service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

func flowID(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.ValidatedFlowIDKey).(string); ok {
		return id
	}
	return c.Params("flowID")
}

// GetQuestions godoc
// @Summary Get the questionnaire
// @Description Returns all sections and their questions in order. Answer keys are never included.
// @Tags assessment
// @Produce json
// @Success 200 {object} dto.QuestionsResponse
// @Router /assessment/questions [get]
func (h *AssessmentHandler) GetQuestions(c *fiber.Ctx) error {
	return c.JSON(h.service.Questions())
}

// StartFlow godoc
// @Summary Start an assessment
// @Description Creates a new flow positioned at the basic information step
// @Tags assessment
// @Produce json
// @Success 201 {object} dto.FlowResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /assessment/flows [post]
func (h *AssessmentHandler) StartFlow(c *fiber.Ctx) error {
	flow, err := h.service.StartFlow(c.Context(), middleware.VisitorID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(flow)
}

// GetFlow godoc
// @Summary Get an assessment flow
// @Tags assessment
// @Produce json
// @Param flowID path string true "Flow ID"
// @Success 200 {object} dto.FlowResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /assessment/flows/{flowID} [get]
func (h *AssessmentHandler) GetFlow(c *fiber.Ctx) error {
	flow, err := h.service.GetFlow(c.Context(), middleware.VisitorID(c), flowID(c))
	if err != nil {
		return err
	}
	return c.JSON(flow)
}

// UpdateBasicInfo godoc
// @Summary Edit basic information
// @Description Applies a partial update; omitted fields keep their value
// @Tags assessment
// @Accept json
// @Produce json
// @Param flowID path string true "Flow ID"
// @Param request body domain.BasicInfoPatch true "Fields to update"
// @Success 200 {object} dto.FlowResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /assessment/flows/{flowID}/basic-info [put]
func (h *AssessmentHandler) UpdateBasicInfo(c *fiber.Ctx) error {
	var patch domain.BasicInfoPatch
	if err := c.BodyParser(&patch); err != nil {
		logger.Get().Debug("Invalid basic info body", zap.Error(err))
		return domain.NewInvalidInputError("Invalid request body")
	}

	flow, err := h.service.UpdateBasicInfo(c.Context(), middleware.VisitorID(c), flowID(c), patch)
	if err != nil {
		return err
	}
	return c.JSON(flow)
}

// SubmitBasicInfo godoc
// @Summary Submit basic information
// @Description Checks every required field and moves the flow to the first section
// @Tags assessment
// @Produce json
// @Param flowID path string true "Flow ID"
// @Success 200 {object} dto.FlowResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /assessment/flows/{flowID}/basic-info/submit [post]
func (h *AssessmentHandler) SubmitBasicInfo(c *fiber.Ctx) error {
	flow, err := h.service.SubmitBasicInfo(c.Context(), middleware.VisitorID(c), flowID(c))
	if err != nil {
		return err
	}
	return c.JSON(flow)
}

// RecordAnswer godoc
// @Summary Record an answer
// @Description Stores or replaces the answer to one question
// @Tags assessment
// @Accept json
// @Produce json
// @Param flowID path string true "Flow ID"
// @Param request body dto.RecordAnswerRequest true "Answer"
// @Success 200 {object} dto.FlowResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /assessment/flows/{flowID}/answers [put]
func (h *AssessmentHandler) RecordAnswer(c *fiber.Ctx) error {
	var req dto.RecordAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := h.validator.ValidateRecordAnswerRequest(&req); len(errs) > 0 {
		return errs
	}

	flow, err := h.service.RecordAnswer(c.Context(), middleware.VisitorID(c), flowID(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(flow)
}

// Next godoc
// @Summary Go to the next section
// @Description Refused until every question of the current section is answered
// @Tags assessment
// @Produce json
// @Param flowID path string true "Flow ID"
// @Success 200 {object} dto.FlowResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /assessment/flows/{flowID}/next [post]
func (h *AssessmentHandler) Next(c *fiber.Ctx) error {
	flow, err := h.service.Next(c.Context(), middleware.VisitorID(c), flowID(c))
	if err != nil {
		return err
	}
	return c.JSON(flow)
}

// Previous godoc
// @Summary Go to the previous section
// @Tags assessment
// @Produce json
// @Param flowID path string true "Flow ID"
// @Success 200 {object} dto.FlowResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /assessment/flows/{flowID}/previous [post]
func (h *AssessmentHandler) Previous(c *fiber.Ctx) error {
	flow, err := h.service.Previous(c.Context(), middleware.VisitorID(c), flowID(c))
	if err != nil {
		return err
	}
	return c.JSON(flow)
}

// Submit godoc
// @Summary Submit the assessment
// @Description Re-checks every section, forwards the answers for analysis and returns where to go next.
// @Description A failing analysis service still yields 200 with a redirect to the results page.
// @Tags assessment
// @Produce json
// @Param flowID path string true "Flow ID"
// @Success 200 {object} dto.SubmitResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /assessment/flows/{flowID}/submit [post]
func (h *AssessmentHandler) Submit(c *fiber.Ctx) error {
	resp, err := h.service.Submit(c.Context(), middleware.VisitorID(c), flowID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
