package services

import (
	"fmt"
	"html"
	"log"

	"election-monitor-api/config"
	"election-monitor-api/models"
)

// PendingItem is one entry in a role's attention queue.
type PendingItem struct {
	Kind       string                    `json:"kind"` // incident | correction_request
	Incident   *models.Incident          `json:"incident,omitempty"`
	Correction *models.CorrectionRequest `json:"correction_request,omitempty"`
}

// PendingForRole derives the attention queue for a role at query time:
// Police see incidents still in reported state, Admins see pending
// correction requests. The projection owns no rows of its own, so it can
// never drift from the underlying engines.
func PendingForRole(roleID int) ([]PendingItem, error) {
	items := []PendingItem{}

	switch roleID {
	case models.RolePolice:
		var incidents []models.Incident
		err := config.DB.Where("status = ?", models.IncidentStatusReported).
			Order("reported_at DESC").
			Find(&incidents).Error
		if err != nil {
			return nil, storageErr(err)
		}
		for i := range incidents {
			items = append(items, PendingItem{Kind: "incident", Incident: &incidents[i]})
		}
	case models.RoleAdmin:
		var requests []models.CorrectionRequest
		err := config.DB.Where("state = ?", models.CorrectionStatePending).
			Order("requested_at DESC").
			Find(&requests).Error
		if err != nil {
			return nil, storageErr(err)
		}
		for i := range requests {
			items = append(items, PendingItem{Kind: "correction_request", Correction: &requests[i]})
		}
	}

	return items, nil
}

// Email fan-out is best effort: a mailer failure is logged and never fails
// the mutation that triggered it.

func notifyIncidentReported(incident *models.Incident) {
	emails, err := roleEmails(models.RolePolice)
	if err != nil {
		log.Printf("Warning: incident alert recipients lookup failed: %v", err)
		return
	}

	subject := fmt.Sprintf("[Election Monitor] New %s severity incident: %s", incident.Severity, incident.Title)
	body := fmt.Sprintf(`<p>A new incident has been reported and awaits acknowledgment.</p>
<p><b>%s</b><br>Severity: %s<br>Location: %s<br>Reported by: %s</p>`,
		html.EscapeString(incident.Title),
		incident.Severity,
		html.EscapeString(incident.Location),
		html.EscapeString(incident.ReporterName))

	if err := config.SendMail(emails, subject, body); err != nil {
		log.Printf("Warning: incident alert mail failed: %v", err)
	}
}

func notifyCorrectionRequested(centerID, officerName string) {
	emails, err := roleEmails(models.RoleAdmin)
	if err != nil {
		log.Printf("Warning: correction alert recipients lookup failed: %v", err)
		return
	}

	subject := fmt.Sprintf("[Election Monitor] Correction requested for center %s", centerID)
	body := fmt.Sprintf(`<p>Officer %s has requested a tally correction for polling center <b>%s</b>.</p>
<p>Approve or reject the request from the admin dashboard.</p>`,
		html.EscapeString(officerName), html.EscapeString(centerID))

	if err := config.SendMail(emails, subject, body); err != nil {
		log.Printf("Warning: correction alert mail failed: %v", err)
	}
}

func roleEmails(roleID int) ([]string, error) {
	var emails []string
	err := config.DB.Model(&models.User{}).
		Where("role_id = ? AND delete_at IS NULL", roleID).
		Pluck("email", &emails).Error
	return emails, err
}
