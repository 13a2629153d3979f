package trace

import (
	"context"

	"github.com/google/uuid"
)

// The context key type stays unexported so other packages cannot collide with it.
type ctxKey string

const ctxKeyRequestID ctxKey = "request_id"

// GenerateID returns a random request id.
func GenerateID() string {
	return uuid.NewString()
}

// WithRequestID stores requestID on ctx.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, requestID)
}

// RequestIDFromContext returns the request id stored by WithRequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(ctxKeyRequestID).(string)
	return v
}
