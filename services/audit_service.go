package services

import (
	"time"

	"election-monitor-api/config"
	"election-monitor-api/models"

	"gorm.io/gorm"
)

// Query results are capped regardless of the requested limit; retention
// in the table itself is unbounded.
const (
	auditDefaultLimit = 100
	auditMaxLimit     = 1000
)

// AuditFilter narrows QueryAuditLogs; zero values mean "any".
type AuditFilter struct {
	ActorID int
	Action  string
	From    *time.Time
	To      *time.Time
	Limit   int
}

// AppendAuditTx writes one audit entry inside the caller's transaction so
// the entry commits together with the state change it records.
func AppendAuditTx(tx *gorm.DB, actor Actor, action, details string) error {
	entry := models.AuditLog{
		ActorID:       actor.UserID,
		ActorName:     actor.Name,
		Action:        action,
		Details:       details,
		SourceAddress: actor.SourceIP,
		CreatedAt:     time.Now(),
	}
	if err := tx.Create(&entry).Error; err != nil {
		return storageErr(err)
	}
	return nil
}

// AppendAudit records an informational event outside any state mutation
// (logins, dashboard access).
func AppendAudit(actor Actor, action, details string) error {
	return AppendAuditTx(config.DB, actor, action, details)
}

// QueryAuditLogs returns entries newest-first.
func QueryAuditLogs(filter AuditFilter) ([]models.AuditLog, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = auditDefaultLimit
	}
	if limit > auditMaxLimit {
		limit = auditMaxLimit
	}

	q := config.DB.Model(&models.AuditLog{})
	if filter.ActorID != 0 {
		q = q.Where("actor_id = ?", filter.ActorID)
	}
	if filter.Action != "" {
		q = q.Where("action = ?", filter.Action)
	}
	if filter.From != nil {
		q = q.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("created_at <= ?", *filter.To)
	}

	var entries []models.AuditLog
	if err := q.Order("log_id DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, storageErr(err)
	}
	return entries, nil
}
