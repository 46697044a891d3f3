package web

import "context"

// requestIDKey is the private context key for the request ID, so other
// packages cannot collide with it.
type requestIDKey struct{}

// WithRequestID returns a child context carrying the request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestID extracts the request ID set by the middleware. The second
// return value is false when the context never passed through it.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}
