package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"campwise/handlers"
	"campwise/middleware"
	"campwise/utils"
)

// RegisterDayRoutes registers camp day and schedule entry endpoints.
func RegisterDayRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.CapabilityMiddleware())
	{
		api.GET("/groups/:groupId/days", hb.ListDaysHandler)
		api.POST("/groups/:groupId/days", middleware.RequireEdit(), hb.CreateDayHandler)
		api.GET("/days/:dayId", hb.GetDayHandler)
		api.PATCH("/days/:dayId", middleware.RequireEdit(), hb.UpdateDayHandler)
		api.DELETE("/days/:dayId", middleware.RequireDeleteDay(), hb.DeleteDayHandler)

		api.GET("/days/:dayId/entries", hb.ListEntriesHandler)
		api.POST("/days/:dayId/entries", middleware.RequireEdit(), hb.CreateEntryHandler)
		api.PATCH("/entries/:entryId", middleware.RequireEdit(), hb.UpdateEntryHandler)
		api.DELETE("/entries/:entryId", middleware.RequireEdit(), hb.DeleteEntryHandler)
	}
}

// RegisterActivityRoutes registers activity endpoints.
func RegisterActivityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.CapabilityMiddleware())
	{
		api.POST("/groups/:groupId/activities", middleware.RequireEdit(), hb.CreateActivityHandler)
		api.GET("/activities/:activityId", hb.GetActivitySummaryHandler)
	}
}

// RegisterTaskRoutes registers task endpoints.
func RegisterTaskRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.CapabilityMiddleware())
	{
		api.GET("/groups/:groupId/tasks", hb.ListTasksHandler)
		api.GET("/tasks/:taskId", hb.GetTaskHandler)
		api.PATCH("/tasks/:taskId", middleware.RequireEdit(), hb.UpdateTaskHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint backed by the
// periodic dependency monitor.
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
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "If-Match"},
		ExposeHeaders:    []string{"Content-Length", "ETag"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterDayRoutes(r, hb)
	RegisterActivityRoutes(r, hb)
	RegisterTaskRoutes(r, hb)
	RegisterHealthRoute(r)
}
