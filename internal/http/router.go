package api

import (
	"log"
	stdhttp "net/http"

	"shuttlebook/internal/config"
	"shuttlebook/internal/http/handlers"
	"shuttlebook/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// NewRouter wires all routes. Admin routes sit behind JWT auth with the
// admin role; everything else is the public booking surface.
func NewRouter(env config.Env, h *handlers.API) *gin.Engine {
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.AllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.GET("/me", middleware.RequireAuth(h.JWTSecret), h.Me)

		api.GET("/properties", h.ListProperties)
		api.GET("/properties/:slug", h.GetPropertyBySlug)
		api.GET("/properties/:slug/trips", h.ListPropertyTrips)

		api.GET("/trips/:id", h.GetTrip)

		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)

		payments := api.Group("/payments")
		payments.POST("/intent", h.CreatePaymentIntent)
		payments.POST("/webhook", h.PaymentWebhook)

		admin := api.Group("/admin")
		admin.Use(middleware.RequireAuth(h.JWTSecret), middleware.RequireRoles("admin"))
		{
			admin.GET("/trips", h.ListActiveTrips)
			admin.POST("/trips", h.CreateTrip)
			admin.PUT("/trips/:id", h.UpdateTrip)
			admin.GET("/trips/:id/bookings", h.ListTripBookings)
			admin.POST("/trips/:id/property", h.AssignTripToProperty)
			admin.GET("/trips/:id/manifest", h.TripManifest)

			admin.POST("/properties", h.CreateProperty)
			admin.GET("/properties/:id/bookings", h.ListPropertyBookings)
			admin.POST("/bookings/:id/cancel", h.CancelBooking)
			admin.GET("/stats", h.AdminStats)
		}
	}

	return r
}
