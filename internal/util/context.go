package util

import "context"

// CTXKey is the context key type used for all values this service attaches to
// a context.Context.
type CTXKey int

const (
	CTXKeyRequestID CTXKey = iota
)

// RequestIDFromContext returns the request ID attached by the logger
// middleware, or "" when the context carries none.
func RequestIDFromContext(ctx context.Context) string {
	id, ok := ctx.Value(CTXKeyRequestID).(string)
	if !ok {
		return ""
	}
	return id
}
