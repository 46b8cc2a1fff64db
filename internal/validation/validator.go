package validation

import (
	"regexp"
	"strings"

	"career-counsel/internal/domain"
	"career-counsel/internal/dto"
)

const (
	minInitialMessageWords = 20
	maxAnswerValueLength   = 32
)

var (
	// Crockford base32, 26 characters
	ulidPattern     = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	githubURL       = regexp.MustCompile(`^(https?://)?(www\.)?github\.com/[a-zA-Z0-9]([a-zA-Z0-9-]{0,38}[a-zA-Z0-9])?$`)
	githubUsername  = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,38}[a-zA-Z0-9])?$`)
	linkedinProfile = regexp.MustCompile(`^(https?://)?(www\.)?linkedin\.com/in/[a-zA-Z0-9-]+/?$`)
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateFlowID checks the path id of an assessment flow.
func (v *Validator) ValidateFlowID(flowID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(flowID) == "" {
		errors = append(errors, domain.NewMissingFieldError("flow_id"))
	} else if !IsValidULID(flowID) {
		errors = append(errors, domain.NewInvalidFormatError("flow_id", flowID))
	}

	return errors
}

// ValidateTrack checks the results track path parameter.
func (v *Validator) ValidateTrack(track string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(track) == "" {
		errors = append(errors, domain.NewMissingFieldError("track"))
	} else if !domain.Track(track).IsValid() {
		errors = append(errors, domain.NewInvalidFormatError("track", track))
	}

	return errors
}

// ValidateRecordAnswerRequest checks the shape of an answer. Whether the
// question and option exist is decided by the question bank.
func (v *Validator) ValidateRecordAnswerRequest(req *dto.RecordAnswerRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Section) == "" {
		errors = append(errors, domain.NewMissingFieldError("section"))
	} else if !domain.Section(req.Section).IsValid() {
		errors = append(errors, domain.NewInvalidFormatError("section", req.Section))
	}

	if strings.TrimSpace(req.QuestionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("question_id"))
	}

	if strings.TrimSpace(req.Value) == "" {
		errors = append(errors, domain.NewMissingFieldError("value"))
	} else if len(req.Value) > maxAnswerValueLength {
		errors = append(errors, domain.NewOutOfRangeError("value", len(req.Value), 1, maxAnswerValueLength))
	}

	return errors
}

// ValidateCollegeIntake applies the college assessment form rules.
func (v *Validator) ValidateCollegeIntake(req *dto.CollegeIntakeRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors
	required := func(field, value, message string) {
		if strings.TrimSpace(value) == "" {
			errors = append(errors, domain.NewFieldError(field, domain.CodeMissingField, message))
		}
	}

	required("resume", req.ResumeFileName, "Resume is required")
	required("academicStatus.gpa", req.AcademicStatus.GPA, "GPA is required")
	required("academicStatus.yearStatus", req.AcademicStatus.YearStatus, "Current year/graduation year is required")
	required("academicStatus.majorSubjects", req.AcademicStatus.MajorSubjects, "Major subjects/specializations are required")
	required("academicStatus.extracurriculars", req.AcademicStatus.Extracurriculars, "Please describe your extracurriculars/projects")

	if WordCount(req.InitialMessage) < minInitialMessageWords {
		errors = append(errors, domain.NewFieldError("initialMessage", domain.CodeOutOfRange,
			"Please provide at least 20 words for better guidance"))
	}

	if req.GithubProfile != "" && !IsValidGithubProfile(req.GithubProfile) {
		errors = append(errors, domain.NewFieldError("githubProfile", domain.CodeInvalidFormat,
			"Please enter a valid GitHub username or URL"))
	}
	if req.LinkedinProfile != "" && !IsValidLinkedinProfile(req.LinkedinProfile) {
		errors = append(errors, domain.NewFieldError("linkedinProfile", domain.CodeInvalidFormat,
			"Please enter a valid LinkedIn profile URL"))
	}

	return errors
}

// Helper functions for validation

func IsValidULID(s string) bool {
	return len(s) == 26 && ulidPattern.MatchString(s)
}

// IsValidGithubProfile accepts a github.com profile URL or a bare username.
func IsValidGithubProfile(s string) bool {
	return githubURL.MatchString(s) || githubUsername.MatchString(s)
}

func IsValidLinkedinProfile(s string) bool {
	return linkedinProfile.MatchString(s)
}

// WordCount counts whitespace separated words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
