package middleware

import (
	"crypto/subtle"

	"bookwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminAuth checks the bearer token against the configured admin token. An
// empty admin token disables every admin route.
func AdminAuth(adminToken string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok || adminToken == "" ||
			subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) != 1 {
			logger.Warn("AdminAuth: unauthorized admin access", zap.String("ip", c.ClientIP()), zap.String("path", c.FullPath()))
			utils.JSONError(c, logger, utils.AuthError("UNAUTHORIZED_ADMIN", "unauthorized admin access"))
			return
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}
