package models

import (
	"database/sql"
	"time"
)

// AssessmentSubmission is one row of the submission ledger.
type AssessmentSubmission struct {
	ID          string         `db:"ID"`         // ULID
	FlowID      string         `db:"FLOW_ID"`    // Assessment flow that was submitted
	VisitorID   string         `db:"VISITOR_ID"` // Anonymous visitor that owned the flow
	Track       string         `db:"TRACK"`      // school | college
	SessionID   sql.NullString `db:"SESSION_ID"` // Analysis session, NULL when the submission degraded
	Degraded    int            `db:"DEGRADED"`   // NUMBER(1)
	SubmittedAt time.Time      `db:"SUBMITTED_AT"`
}
