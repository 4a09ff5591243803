package ctxutil

import (
	"context"
	"testing"
)

func TestUserFromContext(t *testing.T) {
	ctx := context.Background()
	if got := UserFromContext(ctx); got != "" {
		t.Errorf("expected empty user on bare context, got %q", got)
	}

	ctx = WithUserID(ctx, "user-a")
	if got := UserFromContext(ctx); got != "user-a" {
		t.Errorf("expected user-a, got %q", got)
	}

	ctx = WithUserID(ctx, "user-b")
	if got := UserFromContext(ctx); got != "user-b" {
		t.Errorf("inner value should shadow outer, got %q", got)
	}
}

func TestRequestIDFromContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
	if got := UserFromContext(ctx); got != "" {
		t.Errorf("request id must not leak into user id, got %q", got)
	}
}
