package logger

import "context"

type contextKey string

// RequestIDKey is the context key under which the request ID travels with a
// request's context.
const RequestIDKey contextKey = "request_id"

// WithRequestID stores the request ID in the context so lower layers, the
// GORM logger included, can tag their entries with it.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID returns the request ID carried by the context, or "" when
// none was set.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
