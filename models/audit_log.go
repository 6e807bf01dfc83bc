package models

import "time"

// Audit actions. One entry per successful mutating call; informational
// events (login, dashboard access) may also be appended.
const (
	AuditVoteSubmitted        = "VOTE_SUBMITTED"
	AuditCorrectionRequested  = "CORRECTION_REQUESTED"
	AuditCorrectionApproved   = "CORRECTION_APPROVED"
	AuditCorrectionRejected   = "CORRECTION_REJECTED"
	AuditWindowOpened         = "WINDOW_OPENED"
	AuditWindowClosed         = "WINDOW_CLOSED"
	AuditIncidentReported     = "INCIDENT_REPORTED"
	AuditIncidentAcknowledged = "INCIDENT_ACKNOWLEDGED"
	AuditIncidentResolved     = "INCIDENT_RESOLVED"
	AuditIncidentDismissed    = "INCIDENT_DISMISSED"
	AuditIncidentDeleted      = "INCIDENT_DELETED"
	AuditUserLogin            = "USER_LOGIN"
	AuditDashboardAccessed    = "DASHBOARD_ACCESSED"
)

// AuditLog is append-only: rows are never updated or deleted.
type AuditLog struct {
	LogID         uint      `gorm:"primaryKey;column:log_id" json:"log_id"`
	ActorID       int       `gorm:"column:actor_id;index" json:"actor_id"`
	ActorName     string    `gorm:"column:actor_name" json:"actor_name"`
	Action        string    `gorm:"column:action;index" json:"action"`
	Details       string    `gorm:"column:details" json:"details"`
	SourceAddress string    `gorm:"column:source_address" json:"source_address"`
	CreatedAt     time.Time `gorm:"column:created_at;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
