package routes

import (
	"net/http"
	"time"

	"lipo/handlers"
	"lipo/middleware"
	"lipo/services/booking"
	"lipo/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle carries the assembled handlers into route registration.
type HandlerBundle struct {
	Booking      *handlers.BookingHandler
	Availability *handlers.AvailabilityHandler
	Realtime     *handlers.RealtimeHandler
}

// RegisterRoutes wires up the full HTTP surface.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterHealthRoute(r)
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	api.Use(middleware.JWTAuthMiddleware(""))
	{
		api.POST("", hb.Booking.CreateBooking)
		api.GET("", hb.Booking.ListBookings)
		api.GET("/:id", hb.Booking.GetBooking)
		api.GET("/code/:code", hb.Booking.GetBookingByCode)
		api.PATCH("/:id/status", hb.Booking.UpdateStatus)

		api.POST("/:id/messages", hb.Booking.PostMessage)
		api.GET("/:id/messages", hb.Booking.ListMessages)
		api.POST("/:id/review", hb.Booking.AddReview)

		api.GET("/:id/events", hb.Realtime.StreamBookingUpdates)
		api.GET("/:id/messages/events", hb.Realtime.StreamBookingMessages)
	}
}

// RegisterAvailabilityRoutes registers the availability engine endpoints.
// Reads are public; template and override management requires the provider.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/providers/:id")
	{
		api.GET("/availability", hb.Availability.GetAvailability)
		api.GET("/slots", hb.Availability.GetSlots)
		api.GET("/calendar", hb.Availability.GetCalendar)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(booking.RoleProvider))
		protected.PUT("/availability", hb.Availability.SetAvailability)
		protected.POST("/overrides", hb.Availability.AddOverride)
		protected.DELETE("/overrides/:overrideID", hb.Availability.RemoveOverride)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}
