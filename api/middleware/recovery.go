package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-api/api/trace"
	"blog-api/dto"
	"blog-api/logger"
)

// Recovery turns a panic into a 500 envelope and logs it with the request id.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.ErrorWithFields("panic recovered", logger.Fields{
			"request_id": trace.RequestIDFromContext(c.Request.Context()),
			"path":       c.Request.URL.Path,
			"panic":      fmt.Sprint(recovered),
		})
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponseDTO{
			Success: false,
			Message: "Something went wrong, please try again later.",
		})
	})
}
