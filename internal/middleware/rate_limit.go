package middleware

import (
	"net/http"
	"sync"

	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/shared/apperror"
	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/shared/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// keyedLimiter holds one token bucket per key, created lazily.
type keyedLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	r        rate.Limit
	b        int
}

func newKeyedLimiter(r rate.Limit, b int) *keyedLimiter {
	return &keyedLimiter{
		limiters: make(map[string]*rate.Limiter),
		r:        r,
		b:        b,
	}
}

func (k *keyedLimiter) get(key string) *rate.Limiter {
	k.mu.Lock()
	defer k.mu.Unlock()

	limiter, ok := k.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(k.r, k.b)
		k.limiters[key] = limiter
	}
	return limiter
}

// RateLimitByIP throttles callers per client IP; r is requests per second,
// b the burst allowance. Submissions are the open end of the portal, so
// they get a bucket before anything else runs.
func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := newKeyedLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.get(c.ClientIP()).Allow() {
			response.Error(c, http.StatusTooManyRequests, apperror.CodeRateLimited,
				"Too many requests, slow down", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
