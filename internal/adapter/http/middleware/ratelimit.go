package middleware

import (
	"net/http"

	"quickgigs/internal/infrastructure/ratelimit"
	"quickgigs/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var errRateLimited = pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many requests", http.StatusTooManyRequests)

// RateLimit keys on the authenticated user, falling back to the client IP.
func RateLimit(limiter ratelimit.Limiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := UserID(c)
		if key == "" {
			key = c.ClientIP()
		}
		if !limiter.Allow(c.Request.Context(), scope+":"+key) {
			log.WithFields(log.Fields{"scope": scope, "key": key}).Warn("[ratelimit][middleware] request throttled")
			c.AbortWithStatusJSON(errRateLimited.HTTPStatus, errRateLimited.ToHTTPError())
			return
		}
		c.Next()
	}
}
