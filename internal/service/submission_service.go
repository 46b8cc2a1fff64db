package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"career-counsel/internal/domain"
	"career-counsel/internal/failopen"
	"career-counsel/internal/logger"
	"career-counsel/internal/metrics"
	"career-counsel/internal/util"
)

const (
	submissionOutcomeLive     = "live"
	submissionOutcomeDegraded = "degraded"
)

// SubmissionService forwards finished assessments to the analysis service.
type SubmissionService interface {
	// SubmitSchool never fails. When the analysis service cannot accept the
	// submission the outcome points at the results page without a session.
	SubmitSchool(ctx context.Context, visitorID, flowID string, payload *domain.SchoolSubmission) *domain.SubmissionOutcome
}

type submissionService struct {
	client  domain.CounselorClient
	storage BrowserStorage
	ledger  domain.SubmissionRepository
}

// NewSubmissionService wires the submission adapter. ledger may be nil.
func NewSubmissionService(client domain.CounselorClient, storage BrowserStorage, ledger domain.SubmissionRepository) SubmissionService {
	if storage == nil {
		storage = noopBrowserStorage{}
	}
	return &submissionService{
		client:  client,
		storage: storage,
		ledger:  ledger,
	}
}

func (s *submissionService) SubmitSchool(ctx context.Context, visitorID, flowID string, payload *domain.SchoolSubmission) *domain.SubmissionOutcome {
	track := domain.TrackSchool

	sessionID, degraded := failopen.Do(ctx, "submit_school_assessment",
		func(ctx context.Context) (string, error) {
			resp, err := s.client.SubmitSchoolAssessment(ctx, payload)
			if err != nil {
				return "", err
			}
			if resp == nil {
				return "", fmt.Errorf("empty submission response")
			}
			if resp.Success != nil && !*resp.Success {
				return "", fmt.Errorf("submission refused: %s", resp.Message)
			}
			if resp.SessionID == "" {
				return "", fmt.Errorf("submission response has no session_id")
			}
			return resp.SessionID, nil
		},
		func() string { return "" },
	)

	outcome := &domain.SubmissionOutcome{
		RedirectTo: track.ResultsPath(),
		Degraded:   degraded,
	}

	if degraded {
		metrics.SubmissionsTotal.WithLabelValues(string(track), submissionOutcomeDegraded).Inc()
	} else {
		metrics.SubmissionsTotal.WithLabelValues(string(track), submissionOutcomeLive).Inc()
		outcome.SessionID = sessionID
		outcome.RedirectTo = track.ResultsPath() + "?session_id=" + url.QueryEscape(sessionID)

		if err := s.storage.SetItem(ctx, visitorID, track.StorageKey(), sessionID); err != nil {
			logger.Get().Warn("Failed to remember session id for visitor",
				zap.String("visitor_id", visitorID),
				zap.String("session_id", sessionID),
				zap.Error(err),
			)
		}
	}

	s.record(ctx, &domain.SubmissionRecord{
		ID:          util.NewULID(),
		FlowID:      flowID,
		VisitorID:   visitorID,
		Track:       track,
		SessionID:   sessionID,
		Degraded:    degraded,
		SubmittedAt: time.Now().UTC(),
	})

	logger.Get().Info("School assessment submitted",
		zap.String("flow_id", flowID),
		zap.String("session_id", sessionID),
		zap.Bool("degraded", degraded),
	)
	return outcome
}

func (s *submissionService) record(ctx context.Context, rec *domain.SubmissionRecord) {
	if s.ledger == nil {
		return
	}
	if err := s.ledger.Create(context.WithoutCancel(ctx), rec); err != nil {
		logger.Get().Warn("Failed to append submission to ledger",
			zap.String("flow_id", rec.FlowID),
			zap.Error(err),
		)
	}
}
