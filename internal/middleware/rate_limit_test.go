package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/tastybook/backend/internal/middleware"
)

func newLimitedRouter(limiter *middleware.RateLimiter, authed bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handlers := []gin.HandlerFunc{}
	if authed {
		handlers = append(handlers, func(c *gin.Context) {
			c.Set(middleware.UserIDKey, uuid.New())
		})
	}
	handlers = append(handlers, limiter.RateLimitMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	router.POST("/limited", handlers...)
	return router
}

func TestRateLimitRequiresAuthenticatedCaller(t *testing.T) {
	limiter := middleware.NewRecipeCreationRateLimiter(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}))
	router := newLimitedRouter(limiter, false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/limited", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimitFailsOpenWithoutRedis(t *testing.T) {
	// Port 1 is never a Redis server; the check errors and the
	// request goes through.
	limiter := middleware.NewRecipeCreationRateLimiter(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}))
	router := newLimitedRouter(limiter, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/limited", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rate limit check failed", w.Header().Get("X-RateLimit-Error"))
}
