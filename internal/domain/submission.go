package domain

import (
	"context"
	"time"
)

// SchoolSubmission is the payload posted to the analysis service: the intake
// fields at the top level plus the answers keyed by section.
type SchoolSubmission struct {
	BasicInfo
	AssessmentAnswers     map[Section]map[string]string `json:"assessmentAnswers"`
	AssessmentCompleted   bool                          `json:"assessmentCompleted"`
	AssessmentCompletedAt string                        `json:"assessmentCompletedAt"`
}

// NewSchoolSubmission builds the payload from a finished flow.
func NewSchoolSubmission(state *AssessmentState, completedAt time.Time) *SchoolSubmission {
	answers := make(map[Section]map[string]string, len(state.Answers))
	for section, values := range state.Answers {
		copied := make(map[string]string, len(values))
		for k, v := range values {
			copied[k] = v
		}
		answers[section] = copied
	}
	return &SchoolSubmission{
		BasicInfo:             state.BasicInfo,
		AssessmentAnswers:     answers,
		AssessmentCompleted:   true,
		AssessmentCompletedAt: completedAt.UTC().Format(time.RFC3339),
	}
}

// SubmissionResponse is what the analysis service answers to a submission.
// Success is a pointer so an omitted field is not read as a refusal.
type SubmissionResponse struct {
	Success   *bool  `json:"success,omitempty"`
	SessionID string `json:"session_id"`
	Message   string `json:"message,omitempty"`
}

// SubmissionOutcome tells the client where to go next.
type SubmissionOutcome struct {
	RedirectTo string `json:"redirect_to"`
	SessionID  string `json:"session_id,omitempty"`
	Degraded   bool   `json:"degraded"`
}

// SubmissionRecord is one row of the submission ledger.
type SubmissionRecord struct {
	ID          string
	FlowID      string
	VisitorID   string
	Track       Track
	SessionID   string
	Degraded    bool
	SubmittedAt time.Time
}

// SubmissionRepository appends to the submission ledger.
type SubmissionRepository interface {
	Create(ctx context.Context, record *SubmissionRecord) error
}
