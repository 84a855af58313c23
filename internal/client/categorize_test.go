package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
)

// TestCategorizeError verifies that CategorizeError maps fetch errors to the
// correct ErrorCategory, including wrapped status and network errors.
func TestCategorizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCategory
	}{
		{"nil", nil, ""},
		{"timeout context", context.DeadlineExceeded, ErrorCategoryTimeout},
		{"canceled context", context.Canceled, ErrorCategoryTimeout},
		{"wrapped timeout", fmt.Errorf("%w: request timeout: %w", ErrFetchFailed, context.DeadlineExceeded), ErrorCategoryTimeout},
		{"rate limited", &StatusError{StatusCode: 429}, ErrorCategoryRateLimited},
		{"not found", fmt.Errorf("%w: %w", ErrFetchFailed, &StatusError{StatusCode: 404}), ErrorCategoryUpstream4xx},
		{"bad gateway", fmt.Errorf("%w: %w", ErrFetchFailed, &StatusError{StatusCode: 502}), ErrorCategoryUpstream5xx},
		{"redirect status", &StatusError{StatusCode: 304}, ErrorCategoryUnknown},
		{"dial error", fmt.Errorf("%w: %w", ErrFetchFailed, &net.OpError{Op: "dial", Err: errors.New("connection refused")}), ErrorCategoryNetwork},
		{"unknown", errors.New("something else"), ErrorCategoryUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CategorizeError(tt.err)
			if got != tt.want {
				t.Errorf("CategorizeError() = %v, want %v", got, tt.want)
			}
		})
	}
}
