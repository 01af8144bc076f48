//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"voucher-seckill/internal/handler/middleware"
	"voucher-seckill/internal/pkg/config"
	"voucher-seckill/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(limiter *middleware.RateLimiter, userID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/seckill", func(c *gin.Context) {
		middleware.SetUser(c, userID, "customer")
		c.Next()
	}, limiter.PerUser(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRateLimiter_PerUser(t *testing.T) {
	limiter := middleware.NewRateLimiter(config.RateLimitConfig{RPS: 0.001, Burst: 2, IdleTTL: time.Minute})

	userA := newLimitedRouter(limiter, 1)
	userB := newLimitedRouter(limiter, 2)

	assert.Equal(t, http.StatusOK, httptest.PerformRequest(t, userA, http.MethodPost, "/seckill", nil, "").Code)
	assert.Equal(t, http.StatusOK, httptest.PerformRequest(t, userA, http.MethodPost, "/seckill", nil, "").Code)

	w := httptest.PerformRequest(t, userA, http.MethodPost, "/seckill", nil, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	httptest.AssertHeaders(t, w, map[string]string{"Retry-After": "1"})

	// Buckets are per user.
	assert.Equal(t, http.StatusOK, httptest.PerformRequest(t, userB, http.MethodPost, "/seckill", nil, "").Code)
	assert.Equal(t, 2, limiter.Len())
}

func TestRateLimiter_Cleanup(t *testing.T) {
	limiter := middleware.NewRateLimiter(config.RateLimitConfig{RPS: 10, Burst: 10, IdleTTL: 0})
	router := newLimitedRouter(limiter, 1)

	httptest.PerformRequest(t, router, http.MethodPost, "/seckill", nil, "")
	assert.Equal(t, 1, limiter.Len())

	time.Sleep(time.Millisecond)
	limiter.Cleanup()
	assert.Equal(t, 0, limiter.Len())
}
