package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func rateLimitedRouter(r rate.Limit, b int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/submit", middleware.RateLimitByIP(r, b), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestRateLimitByIP(t *testing.T) {
	t.Run("requests beyond the burst are rejected", func(t *testing.T) {
		// Refill rate of zero so only the burst allowance is spendable.
		router := rateLimitedRouter(rate.Limit(0), 2)

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/submit", nil)
			req.RemoteAddr = "198.51.100.7:4000"
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/submit", nil)
		req.RemoteAddr = "198.51.100.7:4000"
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "RATE_LIMITED")
	})

	t.Run("buckets are per client ip", func(t *testing.T) {
		router := rateLimitedRouter(rate.Limit(0), 1)

		first := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/submit", nil)
		req.RemoteAddr = "198.51.100.7:4000"
		router.ServeHTTP(first, req)
		assert.Equal(t, http.StatusOK, first.Code)

		exhausted := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/submit", nil)
		req.RemoteAddr = "198.51.100.7:4000"
		router.ServeHTTP(exhausted, req)
		assert.Equal(t, http.StatusTooManyRequests, exhausted.Code)

		other := httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodPost, "/submit", nil)
		req.RemoteAddr = "203.0.113.9:4000"
		router.ServeHTTP(other, req)
		assert.Equal(t, http.StatusOK, other.Code)
	})
}
