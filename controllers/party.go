package controllers

import (
	"net/http"

	"election-monitor-api/config"
	"election-monitor-api/models"

	"github.com/gin-gonic/gin"
)

// GET /api/v1/parties
func GetParties(c *gin.Context) {
	var parties []models.Party
	if err := config.DB.Where("is_active = ?", true).
		Order("party_name ASC").
		Find(&parties).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": parties})
}
