package middleware

import (
	"context"
	"net/http"
	"strings"

	"bookwise/models"
	"bookwise/services/verification"
	"bookwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Authenticator resolves a session token to a principal.
type Authenticator interface {
	Authenticate(ctx context.Context, sessionToken string) (*verification.Principal, error)
}

// BearerToken extracts the token from an "Authorization: Bearer" header.
func BearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return token, token != ""
}

// SessionAuth requires a valid session token whose role is in roles and
// stores the principal in the context.
func SessionAuth(auth Authenticator, logger *zap.Logger, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			utils.JSONError(c, logger, utils.AuthError("MISSING_TOKEN", "missing or invalid Authorization header"))
			return
		}

		principal, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			utils.JSONError(c, logger, err)
			return
		}
		if !roleAllowed(principal.Role, roles) {
			utils.JSONError(c, logger, utils.AuthError("FORBIDDEN_ROLE", "this endpoint is not available for your account").
				WithStatus(http.StatusForbidden))
			return
		}

		c.Set(utils.CtxPrincipalID, principal.ID)
		c.Set(utils.CtxRole, principal.Role)
		c.Next()
	}
}

func roleAllowed(role models.Role, roles []models.Role) bool {
	if len(roles) == 0 {
		return true
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
