package services

import (
	"errors"
	"fmt"
	"time"

	"election-monitor-api/config"
	"election-monitor-api/models"
	"election-monitor-api/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IncidentReport carries the fields accepted from the reporting form.
// Attachments reference files already stored by the external file store.
type IncidentReport struct {
	Title           string
	Description     string
	Severity        string
	Location        string
	PollingCenterID *string
	Latitude        *float64
	Longitude       *float64
	Attachments     []IncidentAttachmentRef
}

type IncidentAttachmentRef struct {
	FileURL     string
	ContentType string
}

// IncidentFilter narrows ListIncidents; zero values mean "any".
type IncidentFilter struct {
	Status          string
	Severity        string
	ReportedBy      int
	PollingCenterID string
}

// ReportIncident registers a new field incident with status reported.
func ReportIncident(actor Actor, report IncidentReport) (*models.Incident, error) {
	severity, ok := utils.NormalizeSeverity(report.Severity)
	if !ok {
		return nil, validationErr(fmt.Sprintf("unknown severity: %s", report.Severity))
	}
	if utils.SanitizeInput(report.Title) == "" {
		return nil, validationErr("title is required")
	}
	if utils.SanitizeInput(report.Description) == "" {
		return nil, validationErr("description is required")
	}
	for _, att := range report.Attachments {
		if utils.SanitizeInput(att.FileURL) == "" {
			return nil, validationErr("attachment file_url is required")
		}
	}
	if report.PollingCenterID != nil && *report.PollingCenterID != "" {
		// Soft reference: unknown centers are allowed via free-text
		// location, but a supplied id must resolve.
		if err := ensureCenterExists(config.DB, *report.PollingCenterID); err != nil {
			return nil, err
		}
	}

	incident := models.Incident{
		IncidentID:      uuid.NewString(),
		Title:           utils.SanitizeInput(report.Title),
		Description:     utils.SanitizeInput(report.Description),
		Severity:        severity,
		Status:          models.IncidentStatusReported,
		Location:        utils.SanitizeInput(report.Location),
		PollingCenterID: report.PollingCenterID,
		Latitude:        report.Latitude,
		Longitude:       report.Longitude,
		ReportedBy:      actor.UserID,
		ReporterName:    actor.Name,
		ReporterRole:    actor.RoleID,
		ReportedAt:      time.Now(),
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&incident).Error; err != nil {
			return storageErr(err)
		}
		for _, att := range report.Attachments {
			row := models.IncidentAttachment{
				IncidentID:  incident.IncidentID,
				FileURL:     att.FileURL,
				ContentType: att.ContentType,
			}
			if err := tx.Create(&row).Error; err != nil {
				return storageErr(err)
			}
			incident.Attachments = append(incident.Attachments, row)
		}
		details := fmt.Sprintf("incident %s (%s severity) at %s", incident.IncidentID, severity, incident.Location)
		return AppendAuditTx(tx, actor, models.AuditIncidentReported, details)
	})
	if err != nil {
		return nil, err
	}

	go notifyIncidentReported(&incident)
	return &incident, nil
}

// AcknowledgeIncident moves a reported incident to under_investigation,
// recording who picked it up and the mandatory handling notes.
func AcknowledgeIncident(actor Actor, incidentID, notes string) (*models.Incident, error) {
	if err := utils.ValidateHandlingNotes(notes); err != nil {
		return nil, &AppError{Kind: KindValidation, Err: err}
	}

	unlock := incidentLocks.Lock(incidentID)
	defer unlock()

	var acked *models.Incident
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		incident, err := loadIncident(tx, incidentID)
		if err != nil {
			return err
		}
		if incident.Status != models.IncidentStatusReported {
			return conflictErr(fmt.Sprintf("incident is %s, only reported incidents can be acknowledged", incident.Status))
		}

		now := time.Now()
		trimmed := utils.SanitizeInput(notes)
		updates := map[string]any{
			"status":          models.IncidentStatusUnderInvestigation,
			"handling_notes":  trimmed,
			"acknowledged_by": actor.UserID,
			"acknowledged_at": now,
			"update_at":       now,
		}
		if err := tx.Model(&models.Incident{}).
			Where("incident_id = ?", incidentID).
			Updates(updates).Error; err != nil {
			return storageErr(err)
		}

		incident.Status = models.IncidentStatusUnderInvestigation
		incident.HandlingNotes = &trimmed
		incident.AcknowledgedBy = &actor.UserID
		incident.AcknowledgedAt = &now
		acked = incident

		details := fmt.Sprintf("incident %s acknowledged", incidentID)
		return AppendAuditTx(tx, actor, models.AuditIncidentAcknowledged, details)
	})
	if err != nil {
		return nil, err
	}
	return acked, nil
}

// ResolveIncident closes an incident under investigation as resolved.
func ResolveIncident(actor Actor, incidentID string) (*models.Incident, error) {
	return closeIncident(actor, incidentID, models.IncidentStatusResolved, models.AuditIncidentResolved)
}

// DismissIncident closes an incident under investigation as dismissed.
func DismissIncident(actor Actor, incidentID string) (*models.Incident, error) {
	return closeIncident(actor, incidentID, models.IncidentStatusDismissed, models.AuditIncidentDismissed)
}

func closeIncident(actor Actor, incidentID, status, action string) (*models.Incident, error) {
	unlock := incidentLocks.Lock(incidentID)
	defer unlock()

	var closed *models.Incident
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		incident, err := loadIncident(tx, incidentID)
		if err != nil {
			return err
		}
		if incident.Status != models.IncidentStatusUnderInvestigation {
			return conflictErr(fmt.Sprintf("incident is %s, only incidents under investigation can be closed", incident.Status))
		}

		now := time.Now()
		updates := map[string]any{
			"status":      status,
			"resolved_at": now,
			"update_at":   now,
		}
		if err := tx.Model(&models.Incident{}).
			Where("incident_id = ?", incidentID).
			Updates(updates).Error; err != nil {
			return storageErr(err)
		}

		incident.Status = status
		incident.ResolvedAt = &now
		closed = incident

		return AppendAuditTx(tx, actor, action, fmt.Sprintf("incident %s %s", incidentID, status))
	})
	if err != nil {
		return nil, err
	}
	return closed, nil
}

// DeleteIncident is the admin override outside the state machine: the row
// is removed entirely and the action logged under its own audit action.
func DeleteIncident(actor Actor, incidentID string) error {
	unlock := incidentLocks.Lock(incidentID)
	defer unlock()

	return config.DB.Transaction(func(tx *gorm.DB) error {
		incident, err := loadIncident(tx, incidentID)
		if err != nil {
			return err
		}
		if err := tx.Where("incident_id = ?", incidentID).
			Delete(&models.IncidentAttachment{}).Error; err != nil {
			return storageErr(err)
		}
		if err := tx.Delete(&models.Incident{}, "incident_id = ?", incidentID).Error; err != nil {
			return storageErr(err)
		}
		details := fmt.Sprintf("incident %s (%s) removed by administrative override", incidentID, incident.Title)
		return AppendAuditTx(tx, actor, models.AuditIncidentDeleted, details)
	})
}

// GetIncident returns one incident with its attachments.
func GetIncident(incidentID string) (*models.Incident, error) {
	var incident models.Incident
	err := config.DB.Preload("Attachments").
		First(&incident, "incident_id = ?", incidentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("incident not found")
		}
		return nil, storageErr(err)
	}
	return &incident, nil
}

// ListIncidents returns incidents newest-first, narrowed by filter.
func ListIncidents(filter IncidentFilter) ([]models.Incident, error) {
	q := config.DB.Preload("Attachments").Model(&models.Incident{})

	if filter.Status != "" {
		status, ok := utils.NormalizeIncidentStatus(filter.Status)
		if !ok {
			return nil, validationErr(fmt.Sprintf("unknown status: %s", filter.Status))
		}
		q = q.Where("status = ?", status)
	}
	if filter.Severity != "" {
		severity, ok := utils.NormalizeSeverity(filter.Severity)
		if !ok {
			return nil, validationErr(fmt.Sprintf("unknown severity: %s", filter.Severity))
		}
		q = q.Where("severity = ?", severity)
	}
	if filter.ReportedBy != 0 {
		q = q.Where("reported_by = ?", filter.ReportedBy)
	}
	if filter.PollingCenterID != "" {
		q = q.Where("polling_center_id = ?", filter.PollingCenterID)
	}

	var incidents []models.Incident
	if err := q.Order("reported_at DESC").Find(&incidents).Error; err != nil {
		return nil, storageErr(err)
	}
	return incidents, nil
}

func loadIncident(tx *gorm.DB, incidentID string) (*models.Incident, error) {
	var incident models.Incident
	if err := tx.First(&incident, "incident_id = ?", incidentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("incident not found")
		}
		return nil, storageErr(err)
	}
	return &incident, nil
}
