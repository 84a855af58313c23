package observability

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestInvocationID(t *testing.T) {
	if got := InvocationID(context.Background()); got != "" {
		t.Errorf("InvocationID(empty ctx) = %q, want empty", got)
	}

	id := NewInvocationID()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("NewInvocationID() = %q, not a UUID: %v", id, err)
	}
	if id == NewInvocationID() {
		t.Error("NewInvocationID() returned the same id twice")
	}

	ctx := WithInvocationID(context.Background(), id)
	if got := InvocationID(ctx); got != id {
		t.Errorf("InvocationID() = %q, want %q", got, id)
	}
}
