package controllers

import (
	"log"
	"net/http"

	"election-monitor-api/config"
	"election-monitor-api/models"
	"election-monitor-api/services"

	"github.com/gin-gonic/gin"
)

type partyTotalRow struct {
	PartyID   string `gorm:"column:party_id" json:"party_id"`
	PartyName string `gorm:"column:party_name" json:"party_name"`
	Votes     int    `gorm:"column:votes" json:"votes"`
}

type statusCountRow struct {
	Key   string `gorm:"column:key" json:"key"`
	Count int    `gorm:"column:count" json:"count"`
}

// GET /api/v1/dashboard/stats
// Aggregates for the monitoring screens: reporting progress, active tally
// per party, incident counts by status and severity.
func GetDashboardStats(c *gin.Context) {
	db := config.DB

	var totalCenters int64
	if err := db.Model(&models.PollingCenter{}).Count(&totalCenters).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Centers whose latest version is still active (not superseded).
	var reportedCenters int64
	if err := db.Model(&models.VoteSubmission{}).
		Where("status <> ?", models.SubmissionStatusCorrected).
		Distinct("center_id").
		Count(&reportedCenters).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var partyTotals []partyTotalRow
	err := db.Table("vote_counts AS vc").
		Select("vc.party_id AS party_id, p.party_name AS party_name, COALESCE(SUM(vc.votes),0) AS votes").
		Joins("JOIN vote_submissions s ON s.submission_id = vc.submission_id").
		Joins("JOIN parties p ON p.party_id = vc.party_id").
		Where("s.status <> ?", models.SubmissionStatusCorrected).
		Group("vc.party_id, p.party_name").
		Order("votes DESC").
		Scan(&partyTotals).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var incidentsByStatus []statusCountRow
	err = db.Model(&models.Incident{}).
		Select("status AS `key`, COUNT(*) AS `count`").
		Group("status").
		Scan(&incidentsByStatus).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var incidentsBySeverity []statusCountRow
	err = db.Model(&models.Incident{}).
		Select("severity AS `key`, COUNT(*) AS `count`").
		Group("severity").
		Scan(&incidentsBySeverity).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := services.AppendAudit(actorFromContext(c), models.AuditDashboardAccessed, "dashboard stats viewed"); err != nil {
		log.Printf("Warning: failed to record dashboard access: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"centers": gin.H{
				"total":    totalCenters,
				"reported": reportedCenters,
			},
			"party_totals":          partyTotals,
			"incidents_by_status":   incidentsByStatus,
			"incidents_by_severity": incidentsBySeverity,
		},
	})
}
