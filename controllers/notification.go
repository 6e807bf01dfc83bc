package controllers

import (
	"net/http"

	"election-monitor-api/services"

	"github.com/gin-gonic/gin"
)

// GET /api/v1/notifications/pending
// Dashboards poll this to compute badge counts; the list is derived from
// committed incident/correction state on every call.
func GetPendingNotifications(c *gin.Context) {
	items, err := services.PendingForRole(c.GetInt("roleID"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": items, "meta": gin.H{"total": len(items)}})
}
