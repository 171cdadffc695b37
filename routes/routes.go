package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"aceup/handlers"
	"aceup/utils"
)

// RegisterAvailabilityRoutes registers availability query endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.POST("/query", hb.QueryAvailabilityHandler)
		api.GET("/groups/:groupID/week", hb.WeekAvailabilityHandler)
	}
}

// RegisterGroupRoutes registers group management endpoints.
func RegisterGroupRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/groups")
	{
		api.POST("", hb.CreateGroupHandler)
		api.GET("/:groupID", hb.GetGroupHandler)
		api.POST("/:groupID/members", hb.AddMemberHandler)
		api.DELETE("/:groupID/members/:memberID", hb.RemoveMemberHandler)
		api.DELETE("/:groupID", hb.DeleteGroupHandler)
	}
}

// RegisterScheduleRoutes registers member schedule endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedules")
	{
		api.PUT("/:memberID", hb.UpsertScheduleHandler)
		api.GET("/:memberID", hb.GetScheduleHandler)
		api.DELETE("/:memberID", hb.DeleteScheduleHandler)
	}
}

// RegisterEventRoutes registers calendar event endpoints.
func RegisterEventRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/events")
	{
		api.POST("", hb.CreateEventHandler)
		api.GET("/:eventID", hb.GetEventHandler)
		api.GET("/:eventID/ics", hb.EventICSHandler)
		api.DELETE("/:eventID", hb.DeleteEventHandler)
		api.GET("/groups/:groupID", hb.ListGroupEventsHandler)
	}
}

// RegisterAnalyticsRoutes registers workload report endpoints.
func RegisterAnalyticsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/analytics")
	{
		api.GET("/groups/:groupID/report", hb.GroupReportHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAvailabilityRoutes(r, hb)
	RegisterGroupRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterEventRoutes(r, hb)
	RegisterAnalyticsRoutes(r, hb)
	RegisterHealthRoute(r)
}
