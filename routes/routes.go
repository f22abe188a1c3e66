package routes

import (
	"net/http"
	"time"

	"tripplanner/handlers"
	"tripplanner/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSessionRoutes registers session lifecycle endpoints.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sessions")
	{
		api.POST("", hb.StartSessionHandler)
		api.GET("/:sessionID", hb.GetSessionHandler)
		api.DELETE("/:sessionID", hb.EndSessionHandler)
	}
	r.GET("/api/users/:userID/sessions", hb.ListSessionsHandler)
}

// RegisterTripRoutes sets up the endpoints for the booking pipeline.
func RegisterTripRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/sessions/:sessionID")
	{
		api.Use(middleware.RateLimitMiddleware())

		api.POST("/travel/parse", hb.ParseTravelHandler)
		api.GET("/travel/check", hb.CheckTravelHandler)
		api.POST("/travel/book", hb.BookTravelHandler)
		api.DELETE("/travel", hb.CancelTravelHandler)

		api.POST("/accommodation/parse", hb.ParseAccommodationHandler)
		api.GET("/accommodation/check", hb.CheckAccommodationHandler)
		api.POST("/accommodation/book", hb.BookAccommodationHandler)
		api.DELETE("/accommodation", hb.CancelAccommodationHandler)

		api.POST("/sightseeing/parse", hb.ParseSightseeingHandler)
		api.GET("/sightseeing/check", hb.CheckSightseeingHandler)
		api.POST("/sightseeing/book", hb.BookSightseeingHandler)
		api.DELETE("/sightseeing", hb.CancelSightseeingHandler)

		api.GET("/conflicts", hb.ConflictsHandler)
		api.GET("/bill", hb.BillHandler)
		api.GET("/estimate", hb.EstimateHandler)
		api.GET("/bookings", hb.BookingsHandler)
		api.GET("/bookings/cancelled", hb.CancelledBookingsHandler)

		api.POST("/search", hb.SearchHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Trip Planner"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterSessionRoutes(r, hb)
	RegisterTripRoutes(r, hb)
}
