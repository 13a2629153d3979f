package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"blog-api/logger"
)

// RequestLoggingMiddleware logs the time from entry to response at debug level.
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.Log.Debugf(
			"api_request method=%s path=%s status=%d duration_ms=%d",
			method,
			path,
			c.Writer.Status(),
			time.Since(start).Milliseconds(),
		)
	}
}
