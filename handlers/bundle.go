package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserAuth     *AuthHandler
	ProviderAuth *AuthHandler
	Booking      *BookingHandler
	Directory    *DirectoryHandler
	Admin        *AdminHandler

	// Middleware built in main from the verification service and config.
	UserAuthMiddleware     gin.HandlerFunc
	ProviderAuthMiddleware gin.HandlerFunc
	AdminMiddleware        gin.HandlerFunc

	HealthHandler  gin.HandlerFunc
	MetricsHandler gin.HandlerFunc
}
