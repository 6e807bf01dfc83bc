package models

import "time"

// Correction request states.
const (
	CorrectionStatePending  = "pending"
	CorrectionStateApproved = "approved"
	CorrectionStateRejected = "rejected"
)

// CorrectionRequest is an officer's plea to resubmit a center's tally.
// At most one pending request may exist per center; an admin resolves it
// and approval permits exactly one more submission.
type CorrectionRequest struct {
	RequestID    uint       `gorm:"primaryKey;column:request_id" json:"request_id"`
	CenterID     string     `gorm:"column:center_id;index:idx_correction_center" json:"center_id"`
	SubmissionID uint       `gorm:"column:submission_id" json:"submission_id"`
	RequestedBy  int        `gorm:"column:requested_by" json:"requested_by"`
	RequestedAt  time.Time  `gorm:"column:requested_at" json:"requested_at"`
	State        string     `gorm:"column:state" json:"state"`
	ResolvedBy   *int       `gorm:"column:resolved_by" json:"resolved_by,omitempty"`
	ResolvedAt   *time.Time `gorm:"column:resolved_at" json:"resolved_at,omitempty"`

	// Relations
	Submission VoteSubmission `gorm:"foreignKey:SubmissionID" json:"submission,omitempty"`
}

func (CorrectionRequest) TableName() string {
	return "correction_requests"
}
