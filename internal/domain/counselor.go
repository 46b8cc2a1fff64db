package domain

import "context"

// CounselorClient is the port to the external analysis service.
type CounselorClient interface {
	// SubmitSchoolAssessment posts a finished questionnaire.
	SubmitSchoolAssessment(ctx context.Context, payload *SchoolSubmission) (*SubmissionResponse, error)
	// GetStatus fetches the status document of an analysis session.
	GetStatus(ctx context.Context, sessionID string) (*ResultsResponse, error)
}
