package controllers

import (
	"net/http"

	"election-monitor-api/services"

	"github.com/gin-gonic/gin"
)

// actorFromContext rebuilds the caller identity from the values the auth
// middleware stored on the request.
func actorFromContext(c *gin.Context) services.Actor {
	return services.Actor{
		UserID:   c.GetInt("userID"),
		Name:     c.GetString("displayName"),
		RoleID:   c.GetInt("roleID"),
		SourceIP: c.ClientIP(),
	}
}

// respondError maps service error kinds onto HTTP statuses. The message is
// passed through so callers learn the specific precondition that failed.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch services.KindOf(err) {
	case services.KindValidation:
		status = http.StatusBadRequest
	case services.KindAuthorization:
		status = http.StatusForbidden
	case services.KindNotFound:
		status = http.StatusNotFound
	case services.KindConflict:
		status = http.StatusConflict
	case services.KindStorage:
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
