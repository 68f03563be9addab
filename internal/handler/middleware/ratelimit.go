package middleware

import (
	"log/slog"
	"net/http"

	"groombook/internal/handler/httperr"
	"groombook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type KeyLimiter interface {
	Allow(key string) bool
}

type RateLimitRecorder interface {
	RateLimited(route string)
}

// RateLimit throttles per tenant, falling back to the client IP before auth
// has run. rec may be nil.
func RateLimit(l KeyLimiter, rec RateLimitRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if tenantID, ok := GetTenantID(c); ok {
			key = tenantID.String()
		}

		if !l.Allow(key) {
			if rec != nil {
				rec.RateLimited(c.FullPath())
			}
			slog.Warn("rate limit exceeded", "key", key, "path", c.Request.URL.Path)
			c.Header("Retry-After", "1")
			httperr.AbortWithError(c, http.StatusTooManyRequests, errs.ErrRateLimited, "Too many requests", nil)
		}
	}
}
