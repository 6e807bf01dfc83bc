package controllers

import (
	"net/http"

	"election-monitor-api/services"

	"github.com/gin-gonic/gin"
)

type submitVoteRequest struct {
	CenterID        string         `json:"center_id" binding:"required"`
	PartyVoteCounts map[string]int `json:"party_vote_counts" binding:"required"`
	TotalVotes      int            `json:"total_votes"`
}

// POST /api/v1/votes
func SubmitVote(c *gin.Context) {
	var req submitVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	submission, err := services.SubmitVote(actorFromContext(c), req.CenterID, req.PartyVoteCounts, req.TotalVotes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": submission})
}

// GET /api/v1/polling-centers/:id/submission
func GetSubmission(c *gin.Context) {
	view, err := services.GetSubmission(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": view})
}
