package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput  ErrorCode = "INVALID_INPUT"
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Assessment flow errors
	CodeFlowNotFound         ErrorCode = "FLOW_NOT_FOUND"
	CodeInvalidStep          ErrorCode = "INVALID_STEP"
	CodeSectionIncomplete    ErrorCode = "SECTION_INCOMPLETE"
	CodeNoNextSection        ErrorCode = "NO_NEXT_SECTION"
	CodeNoPreviousSection    ErrorCode = "NO_PREVIOUS_SECTION"
	CodeAssessmentIncomplete ErrorCode = "ASSESSMENT_INCOMPLETE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Context map[string]interface{} `json:"context,omitempty"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
		Context: e.Context,
	})
}

// WithContext attaches a detail that is returned to the client.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors
func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewFlowNotFoundError(flowID string) *DomainError {
	return NewError(CodeFlowNotFound, fmt.Sprintf("Assessment flow not found with ID: %s", flowID), nil)
}

func NewInvalidStepError(message string) *DomainError {
	return NewError(CodeInvalidStep, message, nil)
}

func NewSectionIncompleteError(section Section) *DomainError {
	return NewError(CodeSectionIncomplete, "Please answer all questions in this section before proceeding.", nil).
		WithContext("section", string(section))
}

func NewNoNextSectionError(section Section) *DomainError {
	return NewError(CodeNoNextSection, "This is the last section; submit the assessment instead.", nil).
		WithContext("section", string(section))
}

func NewNoPreviousSectionError(section Section) *DomainError {
	return NewError(CodeNoPreviousSection, "This is the first section.", nil).
		WithContext("section", string(section))
}

func NewAssessmentIncompleteError(incomplete []Section) *DomainError {
	names := make([]string, len(incomplete))
	for i, s := range incomplete {
		names[i] = string(s)
	}
	return NewError(CodeAssessmentIncomplete, "Please complete all sections before submitting the assessment.", nil).
		WithContext("incomplete_sections", names)
}

// ValidationError describes one failed check against a named field.
type ValidationError struct {
	Field   string    `json:"field"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is the set of field errors produced by one validation pass.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Fields returns the names of the failing fields in order.
func (v ValidationErrors) Fields() []string {
	fields := make([]string, len(v))
	for i, e := range v {
		fields[i] = e.Field
	}
	return fields
}

// Has reports whether field has an error.
func (v ValidationErrors) Has(field string) bool {
	for _, e := range v {
		if e.Field == field {
			return true
		}
	}
	return false
}

func NewFieldError(field string, code ErrorCode, message string) ValidationError {
	return ValidationError{Field: field, Code: code, Message: message}
}

func NewMissingFieldError(field string) ValidationError {
	return NewFieldError(field, CodeMissingField, fmt.Sprintf("%s is required", field))
}

func NewInvalidFormatError(field, value string) ValidationError {
	return NewFieldError(field, CodeInvalidFormat, fmt.Sprintf("%s has an invalid format: %q", field, value))
}

func NewOutOfRangeError(field string, value, min, max int) ValidationError {
	return NewFieldError(field, CodeOutOfRange, fmt.Sprintf("%s must be between %d and %d, got %d", field, min, max, value))
}
