package observability

import (
	"context"

	"github.com/google/uuid"
)

type invocationIDKey struct{}

// NewInvocationID returns a fresh id for correlating one CLI run.
func NewInvocationID() string {
	return uuid.NewString()
}

// WithInvocationID stores id on ctx.
func WithInvocationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, invocationIDKey{}, id)
}

// InvocationID returns the id stored by WithInvocationID, or "".
func InvocationID(ctx context.Context) string {
	if id, ok := ctx.Value(invocationIDKey{}).(string); ok {
		return id
	}
	return ""
}
