package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bookwise/models"
	"bookwise/services/verification"
	"bookwise/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type tokenTable map[string]*verification.Principal

func (t tokenTable) Authenticate(ctx context.Context, token string) (*verification.Principal, error) {
	p, ok := t[token]
	if !ok {
		return nil, utils.AuthError("INVALID_TOKEN", "invalid or expired session token")
	}
	return p, nil
}

func serve(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionAuth(t *testing.T) {
	auth := tokenTable{
		"user-token":     {ID: "u1", Role: models.RoleUser},
		"provider-token": {ID: "p1", Role: models.RoleProvider},
	}
	r := gin.New()
	r.GET("/bookings", SessionAuth(auth, zap.NewNop(), models.RoleUser), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(utils.CtxPrincipalID))
	})

	w := serve(r, http.MethodGet, "/bookings", "user-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", w.Body.String())

	w = serve(r, http.MethodGet, "/bookings", "provider-token")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN_ROLE")

	w = serve(r, http.MethodGet, "/bookings", "forged")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TOKEN")

	w = serve(r, http.MethodGet, "/bookings", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "MISSING_TOKEN")
}

func TestAdminAuth(t *testing.T) {
	r := gin.New()
	r.GET("/admin", AdminAuth("s3cret", zap.NewNop()), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodGet, "/admin", "s3cret").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/admin", "guess").Code)

	disabled := gin.New()
	disabled.GET("/admin", AdminAuth("", zap.NewNop()), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	assert.Equal(t, http.StatusUnauthorized, serve(disabled, http.MethodGet, "/admin", "anything").Code)
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(2)
	r := gin.New()
	r.Use(rl.Middleware(zap.NewNop()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/", "").Code)
	w := serve(r, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "RATE_LIMITED")
}

func TestMetrics(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", MetricsHandler())

	serve(r, http.MethodGet, "/ping", "")
	w := serve(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `http_requests_total{method="GET",route="/ping",status="200"}`))
}

func trackedIPs(rl *RateLimiter) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2)
	rl.now = func() time.Time { return now }
	rl.lastSweep = now

	rl.getLimiter("10.0.0.1")
	rl.getLimiter("10.0.0.2")
	assert.Equal(t, 2, trackedIPs(rl))

	now = now.Add(limiterIdleTTL / 2)
	rl.getLimiter("10.0.0.2")
	assert.Equal(t, 2, trackedIPs(rl), "nothing is swept before the idle window passes")

	now = now.Add(limiterIdleTTL / 2)
	rl.getLimiter("10.0.0.3")
	assert.Equal(t, 2, trackedIPs(rl), "only the idle client is dropped")

	rl.mu.Lock()
	_, idle := rl.visitors["10.0.0.1"]
	_, active := rl.visitors["10.0.0.2"]
	rl.mu.Unlock()
	assert.False(t, idle)
	assert.True(t, active)
}
