package routes

import (
	"time"

	"bookwise/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and login endpoints for one role.
func RegisterAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler) {
	api.POST("/register", h.RegisterHandler)
	api.POST("/verify-otp", h.VerifyOTPHandler)
	api.POST("/resend-otp", h.ResendOTPHandler)
	api.POST("/login", h.LoginHandler)
}

// RegisterUserRoutes registers user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	RegisterAuthRoutes(r.Group("/api/users"), hb.UserAuth)
}

// RegisterProviderRoutes registers provider endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		RegisterAuthRoutes(api, hb.ProviderAuth)
		api.GET("", hb.Directory.ListProvidersHandler)

		// Slot calendar of the signed-in provider.
		me := api.Group("/me")
		me.Use(hb.ProviderAuthMiddleware)
		me.POST("/slots", hb.Booking.PublishSlotsHandler)
		me.GET("/slots", hb.Booking.CalendarHandler)

		api.GET("/:id/slots", hb.UserAuthMiddleware, hb.Booking.ProviderSlotsHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(hb.UserAuthMiddleware)
		bookingGroup.POST("", hb.Booking.CreateBookingHandler)
		bookingGroup.GET("", hb.Booking.ListBookingsHandler)
	}
}

// RegisterAdminRoutes registers moderation endpoints guarded by the admin token.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/api/admin")
	{
		admin.Use(hb.AdminMiddleware)
		admin.PATCH("/providers/:id/approval", hb.Admin.SetApprovalHandler)
		admin.PATCH("/:role/:id/block", hb.Admin.SetBlockedHandler)
	}
}

// RegisterOpsRoutes registers health and metrics endpoints.
func RegisterOpsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
	r.GET("/metrics", hb.MetricsHandler)
}

func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterOpsRoutes(r, hb)
}
