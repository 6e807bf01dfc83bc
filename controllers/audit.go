package controllers

import (
	"net/http"
	"strconv"
	"time"

	"election-monitor-api/services"

	"github.com/gin-gonic/gin"
)

// GET /api/v1/admin/audit-logs?actor_id=&action=&from=&to=&limit=
// Date filters accept RFC 3339 timestamps.
func GetAuditLogs(c *gin.Context) {
	filter := services.AuditFilter{
		Action: c.Query("action"),
	}

	if raw := c.Query("actor_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "actor_id must be an integer"})
			return
		}
		filter.ActorID = id
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		filter.Limit = limit
	}
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be an RFC 3339 timestamp"})
			return
		}
		filter.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be an RFC 3339 timestamp"})
			return
		}
		filter.To = &t
	}

	entries, err := services.QueryAuditLogs(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entries, "meta": gin.H{"total": len(entries)}})
}
