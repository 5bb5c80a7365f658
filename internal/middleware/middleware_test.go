package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/feastbook/backend/internal/middleware"
	"github.com/feastbook/backend/internal/types"
)

type stubValidator struct {
	claims *types.TokenClaims
	err    error
}

func (s *stubValidator) ValidateToken(string) (*types.TokenClaims, error) {
	return s.claims, s.err
}

func protectedRouter(v middleware.TokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(v), func(c *gin.Context) {
		id, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	return r
}

func TestAuthMiddlewareAcceptsBearerToken(t *testing.T) {
	userID := uuid.New()
	r := protectedRouter(&stubValidator{claims: &types.TokenClaims{UserID: userID}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestAuthMiddlewareRejects(t *testing.T) {
	tests := []struct {
		name   string
		header string
		err    error
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "bad token", header: "Bearer bad", err: errors.New("invalid token")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := protectedRouter(&stubValidator{err: tt.err})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRateLimiterRejectsAboveBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := middleware.NewRateLimiter(rate.Limit(1), 2)

	r := gin.New()
	r.GET("/ping", rl.LimitMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// Other clients have their own bucket.
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
