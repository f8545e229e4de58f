package middleware

import (
	"net"
	"net/http"
	"time"

	"clipstream-backend/pkg/response"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// RateLimitPerIP throttles requests per client IP with an expiring LRU of
// token buckets, so abandoned IPs age out instead of accumulating.
func RateLimitPerIP(rps, burst, cacheSize int, entryTTL time.Duration) gin.HandlerFunc {
	visitors := lru.NewLRU[string, *rate.Limiter](cacheSize, nil, entryTTL)

	return func(c *gin.Context) {
		host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
		if err != nil {
			host = c.Request.RemoteAddr
		}

		limiter, ok := visitors.Get(host)
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(rps), burst)
			visitors.Add(host, limiter)
		}

		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.ErrorEnvelope{
				StatusCode: http.StatusTooManyRequests,
				Message:    "rate limit exceeded",
				Success:    false,
				Errors:     []string{},
			})
			return
		}
		c.Next()
	}
}
