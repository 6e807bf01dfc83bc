package services

import (
	"strings"
	"testing"
	"time"

	"election-monitor-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportTestIncident(t *testing.T, actor Actor, severity string) *models.Incident {
	t.Helper()
	incident, err := ReportIncident(actor, IncidentReport{
		Title:       "Ballot box dispute",
		Description: "Crowd gathered around the counting table",
		Severity:    severity,
		Location:    "Dhanmondi, Dhaka",
	})
	require.NoError(t, err)
	return incident
}

func notesOfWords(n int) string {
	return strings.TrimSpace(strings.Repeat("note ", n))
}

func TestReportIncidentNormalizesSeverity(t *testing.T) {
	fx := setupTestDB(t)

	incident := reportTestIncident(t, fx.Officer, "HIGH")
	assert.Equal(t, models.SeverityHigh, incident.Severity)
	assert.Equal(t, models.IncidentStatusReported, incident.Status)
	assert.NotEmpty(t, incident.IncidentID)
	assert.Equal(t, fx.Officer.UserID, incident.ReportedBy)

	logs, err := QueryAuditLogs(AuditFilter{Action: models.AuditIncidentReported})
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestReportIncidentValidation(t *testing.T) {
	fx := setupTestDB(t)

	_, err := ReportIncident(fx.Officer, IncidentReport{
		Title:       "x",
		Description: "y",
		Severity:    "catastrophic",
	})
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = ReportIncident(fx.Officer, IncidentReport{
		Title:       "x",
		Description: "   ",
		Severity:    "low",
	})
	assert.Equal(t, KindValidation, KindOf(err))

	unknown := "PC-404"
	_, err = ReportIncident(fx.Officer, IncidentReport{
		Title:           "x",
		Description:     "y",
		Severity:        "low",
		PollingCenterID: &unknown,
	})
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestReportIncidentWithAttachments(t *testing.T) {
	fx := setupTestDB(t)

	incident, err := ReportIncident(fx.Police, IncidentReport{
		Title:       "Torn posters",
		Description: "Campaign material destroyed overnight",
		Severity:    "low",
		Attachments: []IncidentAttachmentRef{
			{FileURL: "https://files.example.org/a.jpg", ContentType: "image/jpeg"},
		},
	})
	require.NoError(t, err)
	require.Len(t, incident.Attachments, 1)

	fetched, err := GetIncident(incident.IncidentID)
	require.NoError(t, err)
	assert.Len(t, fetched.Attachments, 1)
}

func TestAcknowledgeNotesContract(t *testing.T) {
	fx := setupTestDB(t)
	incident := reportTestIncident(t, fx.Officer, "medium")

	_, err := AcknowledgeIncident(fx.Police, incident.IncidentID, "")
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = AcknowledgeIncident(fx.Police, incident.IncidentID, notesOfWords(101))
	assert.Equal(t, KindValidation, KindOf(err))

	acked, err := AcknowledgeIncident(fx.Police, incident.IncidentID, notesOfWords(100))
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusUnderInvestigation, acked.Status)
	require.NotNil(t, acked.HandlingNotes)
	require.NotNil(t, acked.AcknowledgedBy)
	assert.Equal(t, fx.Police.UserID, *acked.AcknowledgedBy)
	assert.NotNil(t, acked.AcknowledgedAt)
}

func TestIncidentStatusMonotonic(t *testing.T) {
	fx := setupTestDB(t)
	incident := reportTestIncident(t, fx.Officer, "critical")

	// Closing before acknowledgment is illegal.
	_, err := ResolveIncident(fx.Admin, incident.IncidentID)
	assert.Equal(t, KindConflict, KindOf(err))
	_, err = DismissIncident(fx.Admin, incident.IncidentID)
	assert.Equal(t, KindConflict, KindOf(err))

	_, err = AcknowledgeIncident(fx.Police, incident.IncidentID, "On our way")
	require.NoError(t, err)

	// Second acknowledgment is illegal.
	_, err = AcknowledgeIncident(fx.Police, incident.IncidentID, "Again")
	assert.Equal(t, KindConflict, KindOf(err))

	resolved, err := ResolveIncident(fx.Police, incident.IncidentID)
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusResolved, resolved.Status)
	assert.NotNil(t, resolved.ResolvedAt)

	// Terminal: no further transitions.
	_, err = ResolveIncident(fx.Admin, incident.IncidentID)
	assert.Equal(t, KindConflict, KindOf(err))
	_, err = DismissIncident(fx.Admin, incident.IncidentID)
	assert.Equal(t, KindConflict, KindOf(err))
	_, err = AcknowledgeIncident(fx.Police, incident.IncidentID, "Too late")
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestDismissIncident(t *testing.T) {
	fx := setupTestDB(t)
	incident := reportTestIncident(t, fx.Officer, "low")

	_, err := AcknowledgeIncident(fx.Police, incident.IncidentID, "Checking")
	require.NoError(t, err)

	dismissed, err := DismissIncident(fx.Admin, incident.IncidentID)
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusDismissed, dismissed.Status)
}

func TestListIncidentsFiltersAndOrder(t *testing.T) {
	fx := setupTestDB(t)

	first := reportTestIncident(t, fx.Officer, "low")
	// Keep reported_at strictly increasing for the ordering assertion.
	require.NoError(t, configDB(t).Model(&models.Incident{}).
		Where("incident_id = ?", first.IncidentID).
		Update("reported_at", time.Now().Add(-time.Hour)).Error)
	second := reportTestIncident(t, fx.Police, "high")

	all, err := ListIncidents(IncidentFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.IncidentID, all[0].IncidentID)
	assert.Equal(t, first.IncidentID, all[1].IncidentID)

	highOnly, err := ListIncidents(IncidentFilter{Severity: "HIGH"})
	require.NoError(t, err)
	require.Len(t, highOnly, 1)
	assert.Equal(t, second.IncidentID, highOnly[0].IncidentID)

	byReporter, err := ListIncidents(IncidentFilter{ReportedBy: fx.Officer.UserID})
	require.NoError(t, err)
	require.Len(t, byReporter, 1)
	assert.Equal(t, first.IncidentID, byReporter[0].IncidentID)

	_, err = ListIncidents(IncidentFilter{Status: "bogus"})
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestDeleteIncidentOverride(t *testing.T) {
	fx := setupTestDB(t)
	incident := reportTestIncident(t, fx.Officer, "medium")

	require.NoError(t, DeleteIncident(fx.Admin, incident.IncidentID))

	_, err := GetIncident(incident.IncidentID)
	assert.Equal(t, KindNotFound, KindOf(err))

	logs, err := QueryAuditLogs(AuditFilter{Action: models.AuditIncidentDeleted})
	require.NoError(t, err)
	assert.Len(t, logs, 1)

	// Deleting again reports not found, not success.
	err = DeleteIncident(fx.Admin, incident.IncidentID)
	assert.Equal(t, KindNotFound, KindOf(err))
}
