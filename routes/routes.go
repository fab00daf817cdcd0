package routes

import (
	"net/http"
	"time"

	"pawmi/handlers"
	"pawmi/middleware"
	"pawmi/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterWalkerRoutes registers walker discovery, profile and review endpoints.
func RegisterWalkerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/walkers")
	{
		// Public discovery endpoints.
		api.GET("", hb.SearchWalkersHandler)
		api.GET("/services", hb.GetServiceCatalogueHandler)
		api.GET("/:id", hb.GetWalkerByIDHandler)
		api.GET("/:id/reviews", hb.ListReviewsHandler)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.GET("/me/profile", hb.GetMyWalkerProfileHandler)
		protected.POST("", hb.BecomeWalkerHandler)
		protected.PUT("/:id", hb.UpdateWalkerHandler)
		protected.POST("/:id/reviews", hb.CreateReviewHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking lifecycle.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListMyBookingsHandler)
		api.GET("/stats", hb.WalkerStatsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.PATCH("/:id/status", hb.UpdateBookingStatusHandler)
	}
}

// RegisterAdoptionRoutes registers the public adoption listing.
func RegisterAdoptionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/adoptions", hb.ListAdoptionsHandler)
}

// RegisterPetRoutes registers pet management endpoints.
func RegisterPetRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/pets")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.CreatePetHandler)
		api.GET("", hb.ListMyPetsHandler)
		api.PUT("/:id", hb.UpdatePetHandler)
		api.DELETE("/:id", hb.DeletePetHandler)
	}
}

// RegisterReminderRoutes registers pet-care reminder endpoints.
func RegisterReminderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reminders")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.CreateReminderHandler)
		api.GET("", hb.ListMyRemindersHandler)
		api.DELETE("/:id", hb.DeleteReminderHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes wires CORS and every route group onto the engine.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterWalkerRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdoptionRoutes(r, hb)
	RegisterPetRoutes(r, hb)
	RegisterReminderRoutes(r, hb)
}
