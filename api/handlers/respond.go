package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-api/api/middleware"
	"blog-api/api/trace"
	"blog-api/dto"
	"blog-api/logger"
	"blog-api/services"
	"blog-api/validation"
)

const msgInvalidInput = "Invalid input."

// respondError writes the failure envelope for err. Unexpected failures are
// logged with the request id; their cause never reaches the client.
func respondError(c *gin.Context, err error) {
	se := services.AsError(err)
	status := se.Status()
	if status >= http.StatusInternalServerError {
		logger.ErrorWithFields("request failed", logger.Fields{
			"request_id": trace.RequestIDFromContext(c.Request.Context()),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"error":      err.Error(),
		})
	}
	c.JSON(status, dto.ErrorResponseDTO{Success: false, Message: se.Message})
}

func respondMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, dto.MessageResponseDTO{Success: true, Message: msg})
}

// bindPayload decodes the JSON body into dst and validates it. On failure it
// writes a 400 and returns false.
func bindPayload(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Success: false, Message: msgInvalidInput})
		return false
	}
	if err := validation.Validate(dst); err != nil {
		msg := msgInvalidInput
		var fe validation.FieldErrors
		if errors.As(err, &fe) {
			msg = fe.Error()
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Success: false, Message: msg})
		return false
	}
	return true
}

// requireCaller returns the authenticated caller or aborts with 401.
func requireCaller(c *gin.Context) (primitive.ObjectID, bool) {
	id, ok := middleware.CallerID(c)
	if !ok {
		middleware.AbortWithUnauthorized(c)
	}
	return id, ok
}

func listInput(c *gin.Context) services.ListInput {
	page, limit := services.ParsePageParams(c.Query("page"), c.Query("limit"))
	return services.ListInput{
		Page:    page,
		Limit:   limit,
		Keyword: c.Query("keyword"),
		State:   c.Query("state"),
	}
}
