//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"voucher-seckill/internal/handler/middleware"
	"voucher-seckill/internal/pkg/config"
	"voucher-seckill/internal/pkg/jwt"
	"voucher-seckill/tests/common/authtest"
	"voucher-seckill/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	tokens := authtest.NewJWTHelper(cfg.JWT)
	auth := middleware.NewAuthMiddleware(jwt.NewService(cfg.JWT.Secret))

	r := gin.New()
	r.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		id, ok := middleware.GetUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	r.POST("/admin", auth.RequireAuth(), auth.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		status int
	}{
		{"valid customer token", http.MethodGet, "/me", tokens.GenerateToken(t, 42, jwt.RoleCustomer), http.StatusOK},
		{"missing token", http.MethodGet, "/me", "", http.StatusUnauthorized},
		{"garbage token", http.MethodGet, "/me", "not-a-jwt", http.StatusUnauthorized},
		{"expired token", http.MethodGet, "/me", tokens.CreateExpiredToken(t, 42, jwt.RoleCustomer), http.StatusUnauthorized},
		{"customer on admin route", http.MethodPost, "/admin", tokens.GenerateToken(t, 42, jwt.RoleCustomer), http.StatusForbidden},
		{"admin on admin route", http.MethodPost, "/admin", tokens.GenerateToken(t, 1, jwt.RoleAdmin), http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.PerformRequest(t, r, tt.method, tt.path, nil, tt.token)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}
