package repository

import (
	"context"
	"fmt"
	"time"

	"career-counsel/internal/domain"
	"career-counsel/internal/repository/models"
	"career-counsel/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxSubmissionRepository implements domain.SubmissionRepository using sqlx.
type sqlxSubmissionRepository struct {
	db *sqlx.DB
}

// NewSQLXSubmissionRepository creates a ledger backed by the assessment_submissions table.
func NewSQLXSubmissionRepository(db *sqlx.DB) domain.SubmissionRepository {
	return &sqlxSubmissionRepository{db: db}
}

func toSubmissionModel(rec *domain.SubmissionRecord) *models.AssessmentSubmission {
	if rec == nil {
		return nil
	}
	return &models.AssessmentSubmission{
		ID:          rec.ID,
		FlowID:      rec.FlowID,
		VisitorID:   rec.VisitorID,
		Track:       string(rec.Track),
		SessionID:   util.StringToNullString(rec.SessionID),
		Degraded:    util.BoolToNumber(rec.Degraded),
		SubmittedAt: rec.SubmittedAt,
	}
}

// Create appends one submission. The ID must already be set.
func (r *sqlxSubmissionRepository) Create(ctx context.Context, rec *domain.SubmissionRecord) error {
	if rec == nil || rec.ID == "" {
		return fmt.Errorf("submission record requires an id")
	}
	m := toSubmissionModel(rec)
	if m.SubmittedAt.IsZero() {
		m.SubmittedAt = time.Now()
	}

	query := `INSERT INTO assessment_submissions (ID, FLOW_ID, VISITOR_ID, TRACK, SESSION_ID, DEGRADED, SUBMITTED_AT)
	          VALUES (:1, :2, :3, :4, :5, :6, :7)`

	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.FlowID,
		m.VisitorID,
		m.Track,
		m.SessionID,
		m.Degraded,
		m.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert submission %s: %w", m.ID, err)
	}
	return nil
}
