package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sidhant19/dental-center-management/internal/config"
	"github.com/sidhant19/dental-center-management/internal/handlers"
	"github.com/sidhant19/dental-center-management/internal/middleware"
	"github.com/sidhant19/dental-center-management/internal/models"
	"github.com/sidhant19/dental-center-management/internal/store"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, st *store.Store, cfg *config.Config) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(st, cfg)
	patientHandler := handlers.NewPatientHandler(st)
	incidentHandler := handlers.NewIncidentHandler(st)
	dashboardHandler := handlers.NewDashboardHandler(st)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
		}
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
			authRoutesPrivate.GET("/profile", authHandler.GetProfile)
		}

		// Patient management routes
		patientRoutes := private.Group("/patients")
		{
			// Patients may read their own record and history; admins any.
			patientRoutes.GET("/:id", patientHandler.GetPatientByID)
			patientRoutes.GET("/:id/incidents", patientHandler.GetPatientIncidents)
			patientRoutes.GET("/:id/upcoming", patientHandler.GetUpcomingAppointments)
			patientRoutes.GET("/:id/history", patientHandler.GetHistoricalAppointments)
			patientRoutes.GET("/:id/files", patientHandler.GetFileAttachments)

			// Admin-only routes
			adminRoutes := patientRoutes.Group("")
			adminRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
			{
				adminRoutes.POST("", patientHandler.CreatePatient)
				adminRoutes.GET("", patientHandler.GetPatients)
				adminRoutes.PUT("/:id", patientHandler.UpdatePatient)
			}
			// Search sits outside the wildcard group to avoid clashing with /:id
			private.GET("/patients-search", middleware.RoleAuthMiddleware(models.RoleAdmin), patientHandler.SearchPatients)
		}

		// Incident (appointment) routes
		incidentRoutes := private.Group("/incidents")
		{
			// All authenticated users; handler scopes patients to their own.
			incidentRoutes.GET("", incidentHandler.GetIncidents)
			incidentRoutes.GET("/:id", incidentHandler.GetIncidentByID)

			adminIncidents := incidentRoutes.Group("")
			adminIncidents.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
			{
				adminIncidents.POST("", incidentHandler.CreateIncident)
				adminIncidents.PUT("/:id", incidentHandler.UpdateIncident)
				adminIncidents.PATCH("/:id/cancel", incidentHandler.CancelIncident)
				adminIncidents.PATCH("/:id/complete", incidentHandler.CompleteIncident)
			}
			private.GET("/incidents-calendar", middleware.RoleAuthMiddleware(models.RoleAdmin), incidentHandler.GetCalendar)
		}

		// Dashboard routes (admin-only aggregates)
		dashboardRoutes := private.Group("/dashboard")
		dashboardRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
		{
			dashboardRoutes.GET("/stats", dashboardHandler.GetStats)
			dashboardRoutes.GET("/upcoming", dashboardHandler.GetUpcomingAppointments)
			dashboardRoutes.GET("/top-paying", dashboardHandler.GetTopPayingPatients)
			dashboardRoutes.GET("/most-visited", dashboardHandler.GetMostVisitedPatients)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
