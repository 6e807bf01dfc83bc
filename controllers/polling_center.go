package controllers

import (
	"net/http"

	"election-monitor-api/config"
	"election-monitor-api/models"
	"election-monitor-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /api/v1/polling-centers?thana=&district=
func GetPollingCenters(c *gin.Context) {
	q := config.DB.Model(&models.PollingCenter{})
	if thana := c.Query("thana"); thana != "" {
		q = q.Where("thana = ?", thana)
	}
	if district := c.Query("district"); district != "" {
		q = q.Where("district = ?", district)
	}

	var centers []models.PollingCenter
	if err := q.Order("center_id ASC").Find(&centers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": centers, "meta": gin.H{"total": len(centers)}})
}

// GET /api/v1/polling-centers/:id
func GetPollingCenter(c *gin.Context) {
	var center models.PollingCenter
	if err := config.DB.First(&center, "center_id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "polling center not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	open, err := services.SubmissionWindowOpen(center.CenterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"center":      center,
		"window_open": open,
	}})
}
