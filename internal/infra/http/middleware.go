package http

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ahmadalarjah/crypto-admin/internal/domain"
)

// requestIDMiddleware assigns an X-Request-ID when the caller did not
// send one, so audit rows and upstream calls correlate.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-Request-ID") == "" {
			c.Request.Header.Set("X-Request-ID", uuid.NewString())
		}
		c.Writer.Header().Set("X-Request-ID", c.GetHeader("X-Request-ID"))
		c.Next()
	}
}

// rateLimitMiddleware caps requests per client IP per window. A limiter
// backend failure fails open; the forwarding pipeline must not depend
// on the limiter being up.
func rateLimitMiddleware(limiter domain.RateLimiter, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision, err := limiter.Allow(c.Request.Context(), c.ClientIP(), limit, window)
		if err != nil {
			log.Printf("rate limiter unavailable: %v", err)
			c.Next()
			return
		}
		if !decision.Allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errorBody{Message: "Too many requests"})
			return
		}
		c.Next()
	}
}
