package routes

import (
	"election-monitor-api/controllers"
	"election-monitor-api/middleware"
	"election-monitor-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Election Monitor API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)

			// Reference data (all authenticated users)
			protected.GET("/parties", controllers.GetParties)
			protected.GET("/polling-centers", controllers.GetPollingCenters)
			protected.GET("/polling-centers/:id", controllers.GetPollingCenter)
			protected.GET("/polling-centers/:id/submission", controllers.GetSubmission)

			// Vote submission (officers only)
			protected.POST("/votes", middleware.RequireRole(models.RoleOfficer), controllers.SubmitVote)

			// Correction cycle
			corrections := protected.Group("/corrections")
			{
				corrections.POST("/request", middleware.RequireRole(models.RoleOfficer), controllers.RequestCorrection)
				corrections.POST("/approve", middleware.RequireRole(models.RoleAdmin), controllers.ApproveCorrection)
				corrections.POST("/reject", middleware.RequireRole(models.RoleAdmin), controllers.RejectCorrection)
			}

			// Incidents
			incidents := protected.Group("/incidents")
			{
				incidents.GET("", controllers.ListIncidents)
				incidents.GET("/:id", controllers.GetIncident)

				// Officers, admins and police may report
				incidents.POST("", middleware.RequireRole(models.RoleOfficer, models.RoleAdmin, models.RolePolice), controllers.ReportIncident)

				// Police acknowledge; admin or police close
				incidents.PATCH("/:id/acknowledge", middleware.RequireRole(models.RolePolice), controllers.AcknowledgeIncident)
				incidents.PATCH("/:id/resolve", middleware.RequireRole(models.RoleAdmin, models.RolePolice), controllers.ResolveIncident)
				incidents.PATCH("/:id/dismiss", middleware.RequireRole(models.RoleAdmin, models.RolePolice), controllers.DismissIncident)
			}

			// Notifications (role-based pending queue)
			protected.GET("/notifications/pending", controllers.GetPendingNotifications)

			// Dashboard
			protected.GET("/dashboard/stats", controllers.GetDashboardStats)

			// Admin-only surface
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.POST("/toggle-window", controllers.ToggleWindow)
				admin.GET("/audit-logs", controllers.GetAuditLogs)
				admin.DELETE("/incidents/:id", controllers.DeleteIncident)
			}
		}
	}
}
