package correlationid

import (
	"context"
)

// Header is the HTTP and message header carrying the correlation ID.
const Header = "X-Correlation-ID"

type contextKey struct{}

// NewContext returns a new context carrying the given correlation ID.
func NewContext(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, contextKey{}, correlationID)
}

// FromContext extracts the correlation ID from the context.
func FromContext(ctx context.Context) (string, bool) {
	correlationID, ok := ctx.Value(contextKey{}).(string)
	return correlationID, ok
}
