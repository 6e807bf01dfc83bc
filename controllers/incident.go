package controllers

import (
	"net/http"
	"strconv"

	"election-monitor-api/services"

	"github.com/gin-gonic/gin"
)

type attachmentRef struct {
	FileURL     string `json:"file_url" binding:"required"`
	ContentType string `json:"content_type"`
}

type reportIncidentRequest struct {
	Title           string          `json:"title" binding:"required"`
	Description     string          `json:"description" binding:"required"`
	Severity        string          `json:"severity" binding:"required"`
	Location        string          `json:"location"`
	PollingCenterID *string         `json:"polling_center_id"`
	Latitude        *float64        `json:"latitude"`
	Longitude       *float64        `json:"longitude"`
	Attachments     []attachmentRef `json:"attachments"`
}

// POST /api/v1/incidents
func ReportIncident(c *gin.Context) {
	var req reportIncidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	report := services.IncidentReport{
		Title:           req.Title,
		Description:     req.Description,
		Severity:        req.Severity,
		Location:        req.Location,
		PollingCenterID: req.PollingCenterID,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
	}
	for _, att := range req.Attachments {
		report.Attachments = append(report.Attachments, services.IncidentAttachmentRef{
			FileURL:     att.FileURL,
			ContentType: att.ContentType,
		})
	}

	incident, err := services.ReportIncident(actorFromContext(c), report)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": incident})
}

type acknowledgeRequest struct {
	Notes string `json:"notes"`
}

// PATCH /api/v1/incidents/:id/acknowledge
func AcknowledgeIncident(c *gin.Context) {
	var req acknowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	incident, err := services.AcknowledgeIncident(actorFromContext(c), c.Param("id"), req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": incident})
}

// PATCH /api/v1/incidents/:id/resolve
func ResolveIncident(c *gin.Context) {
	incident, err := services.ResolveIncident(actorFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": incident})
}

// PATCH /api/v1/incidents/:id/dismiss
func DismissIncident(c *gin.Context) {
	incident, err := services.DismissIncident(actorFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": incident})
}

// DELETE /api/v1/admin/incidents/:id
func DeleteIncident(c *gin.Context) {
	if err := services.DeleteIncident(actorFromContext(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"incident_id": c.Param("id"), "deleted": true}})
}

// GET /api/v1/incidents/:id
func GetIncident(c *gin.Context) {
	incident, err := services.GetIncident(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": incident})
}

// GET /api/v1/incidents?status=&severity=&reported_by=&polling_center_id=
func ListIncidents(c *gin.Context) {
	filter := services.IncidentFilter{
		Status:          c.Query("status"),
		Severity:        c.Query("severity"),
		PollingCenterID: c.Query("polling_center_id"),
	}
	if raw := c.Query("reported_by"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "reported_by must be an integer"})
			return
		}
		filter.ReportedBy = id
	}

	incidents, err := services.ListIncidents(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": incidents, "meta": gin.H{"total": len(incidents)}})
}
