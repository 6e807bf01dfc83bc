package models

import "time"

// Submission statuses. A submission never leaves the table; a correction
// cycle appends a new version and marks the prior one corrected.
const (
	SubmissionStatusSubmitted           = "submitted"
	SubmissionStatusCorrectionRequested = "correction_requested"
	SubmissionStatusCorrectionApproved  = "correction_approved"
	SubmissionStatusCorrected           = "corrected"
)

// VoteSubmission is one recorded tally version for a polling center.
// The active version is the one with the highest version number.
type VoteSubmission struct {
	SubmissionID  uint       `gorm:"primaryKey;column:submission_id" json:"submission_id"`
	CenterID      string     `gorm:"column:center_id;index:idx_submission_center" json:"center_id"`
	Version       int        `gorm:"column:version" json:"version"`
	SubmittedBy   int        `gorm:"column:submitted_by" json:"submitted_by"`
	SubmitterName string     `gorm:"column:submitter_name" json:"submitter_name"`
	TotalVotes    int        `gorm:"column:total_votes" json:"total_votes"`
	Status        string     `gorm:"column:status" json:"status"`
	SubmittedAt   time.Time  `gorm:"column:submitted_at" json:"submitted_at"`
	UpdateAt      *time.Time `gorm:"column:update_at" json:"-"`

	// Relations
	Counts []VoteCount `gorm:"foreignKey:SubmissionID" json:"counts,omitempty"`
}

// VoteCount is one party's share of a submission.
type VoteCount struct {
	CountID      uint   `gorm:"primaryKey;column:count_id" json:"count_id"`
	SubmissionID uint   `gorm:"column:submission_id;index" json:"submission_id"`
	PartyID      string `gorm:"column:party_id" json:"party_id"`
	Votes        int    `gorm:"column:votes" json:"votes"`
}

// CountsByParty flattens the child rows into the wire map shape.
func (s *VoteSubmission) CountsByParty() map[string]int {
	out := make(map[string]int, len(s.Counts))
	for _, c := range s.Counts {
		out[c.PartyID] = c.Votes
	}
	return out
}

// TableName overrides
func (VoteSubmission) TableName() string {
	return "vote_submissions"
}

func (VoteCount) TableName() string {
	return "vote_counts"
}
