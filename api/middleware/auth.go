package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"blog-api/api/trace"
	"blog-api/auth"
	"blog-api/dto"
	"blog-api/logger"
)

const (
	ctxKeyCallerID = "caller_id"

	MsgUnauthorized = "You're unauthorized for this action, Kindly Login or Register."
)

// TokenParser verifies a bearer token and returns the user id it was issued for.
type TokenParser interface {
	Parse(token string) (string, error)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller id for handlers.
func RequireAuth(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.BearerToken(c.Request)
		if err != nil {
			logger.DebugWithFields("no bearer token", logger.Fields{
				"request_id": trace.RequestIDFromContext(c.Request.Context()),
				"error":      err.Error(),
			})
			AbortWithUnauthorized(c)
			return
		}

		sub, err := tokens.Parse(token)
		if err != nil {
			logger.DebugWithFields("token rejected", logger.Fields{
				"request_id": trace.RequestIDFromContext(c.Request.Context()),
				"error":      err.Error(),
			})
			AbortWithUnauthorized(c)
			return
		}

		callerID, err := primitive.ObjectIDFromHex(sub)
		if err != nil {
			AbortWithUnauthorized(c)
			return
		}

		c.Set(ctxKeyCallerID, callerID)
		c.Next()
	}
}

// CallerID returns the id stored by RequireAuth.
func CallerID(c *gin.Context) (primitive.ObjectID, bool) {
	v, ok := c.Get(ctxKeyCallerID)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, ok := v.(primitive.ObjectID)
	return id, ok
}

// AbortWithUnauthorized aborts the request with 401 and the failure envelope.
func AbortWithUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Success: false, Message: MsgUnauthorized})
}
