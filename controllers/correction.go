package controllers

import (
	"net/http"

	"election-monitor-api/services"

	"github.com/gin-gonic/gin"
)

type correctionRequest struct {
	CenterID string `json:"center_id" binding:"required"`
}

// POST /api/v1/corrections/request
func RequestCorrection(c *gin.Context) {
	var req correctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	request, err := services.RequestCorrection(actorFromContext(c), req.CenterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": request})
}

// POST /api/v1/corrections/approve
func ApproveCorrection(c *gin.Context) {
	var req correctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := services.ApproveCorrection(actorFromContext(c), req.CenterID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"center_id": req.CenterID, "state": "approved"}})
}

// POST /api/v1/corrections/reject
func RejectCorrection(c *gin.Context) {
	var req correctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := services.RejectCorrection(actorFromContext(c), req.CenterID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"center_id": req.CenterID, "state": "rejected"}})
}

type toggleWindowRequest struct {
	CenterID string `json:"center_id"`
	Open     *bool  `json:"open" binding:"required"`
}

// POST /api/v1/admin/toggle-window
// An empty center_id toggles the election-wide window.
func ToggleWindow(c *gin.Context) {
	var req toggleWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := services.SetSubmissionWindow(actorFromContext(c), req.CenterID, *req.Open); err != nil {
		respondError(c, err)
		return
	}

	scope := "global"
	if req.CenterID != "" {
		scope = req.CenterID
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"scope": scope, "open": *req.Open}})
}
