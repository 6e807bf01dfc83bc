package models

import "time"

// Incident severities (canonical lowercase).
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Incident statuses, forward-only:
// reported -> under_investigation -> resolved | dismissed.
const (
	IncidentStatusReported           = "reported"
	IncidentStatusUnderInvestigation = "under_investigation"
	IncidentStatusResolved           = "resolved"
	IncidentStatusDismissed          = "dismissed"
)

// Incident is a field-reported election irregularity routed to law
// enforcement. PollingCenterID is a soft reference; incidents away from a
// known center carry only the free-text location.
type Incident struct {
	IncidentID      string     `gorm:"primaryKey;column:incident_id" json:"incident_id"`
	Title           string     `gorm:"column:title" json:"title"`
	Description     string     `gorm:"column:description" json:"description"`
	Severity        string     `gorm:"column:severity;index" json:"severity"`
	Status          string     `gorm:"column:status;index" json:"status"`
	Location        string     `gorm:"column:location" json:"location"`
	PollingCenterID *string    `gorm:"column:polling_center_id;index" json:"polling_center_id,omitempty"`
	Latitude        *float64   `gorm:"column:latitude" json:"latitude,omitempty"`
	Longitude       *float64   `gorm:"column:longitude" json:"longitude,omitempty"`
	ReportedBy      int        `gorm:"column:reported_by;index" json:"reported_by"`
	ReporterName    string     `gorm:"column:reporter_name" json:"reporter_name"`
	ReporterRole    int        `gorm:"column:reporter_role" json:"reporter_role"`
	ReportedAt      time.Time  `gorm:"column:reported_at" json:"reported_at"`
	HandlingNotes   *string    `gorm:"column:handling_notes" json:"handling_notes,omitempty"`
	AcknowledgedBy  *int       `gorm:"column:acknowledged_by" json:"acknowledged_by,omitempty"`
	AcknowledgedAt  *time.Time `gorm:"column:acknowledged_at" json:"acknowledged_at,omitempty"`
	ResolvedAt      *time.Time `gorm:"column:resolved_at" json:"resolved_at,omitempty"`
	UpdateAt        *time.Time `gorm:"column:update_at" json:"-"`

	// Relations
	Attachments []IncidentAttachment `gorm:"foreignKey:IncidentID" json:"attachments,omitempty"`
}

// IncidentAttachment references a file already stored by the external
// file store; this service never handles the bytes.
type IncidentAttachment struct {
	AttachmentID uint   `gorm:"primaryKey;column:attachment_id" json:"attachment_id"`
	IncidentID   string `gorm:"column:incident_id;index" json:"incident_id"`
	FileURL      string `gorm:"column:file_url" json:"file_url"`
	ContentType  string `gorm:"column:content_type" json:"content_type"`
}

// IsTerminal reports whether the incident can no longer transition.
func (i *Incident) IsTerminal() bool {
	return i.Status == IncidentStatusResolved || i.Status == IncidentStatusDismissed
}

// TableName overrides
func (Incident) TableName() string {
	return "incidents"
}

func (IncidentAttachment) TableName() string {
	return "incident_attachments"
}
