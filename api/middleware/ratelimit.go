package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-api/api/trace"
	"blog-api/dto"
	"blog-api/logger"
	"blog-api/ratelimit"
)

const MsgTooManyRequests = "Too many requests, please try again later."

// RateLimit rejects clients that exceed the limiter's budget with 429. A nil
// limiter disables the check. Limiter failures let the request through.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		ok, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.WarnWithFields("rate limiter unavailable", logger.Fields{
				"request_id": trace.RequestIDFromContext(c.Request.Context()),
				"error":      err.Error(),
			})
			c.Next()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponseDTO{Success: false, Message: MsgTooManyRequests})
			return
		}
		c.Next()
	}
}
