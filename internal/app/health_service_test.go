package app

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestHealthCheck(t *testing.T) {
	fixed := time.Date(2024, 3, 4, 9, 30, 0, 0, time.FixedZone("CET", 3600))
	svc := NewHealthService(&mockHealthProbe{})
	svc.now = func() time.Time { return fixed }

	health, err := svc.Check(context.Background())
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if health.Status != "ok" {
		t.Errorf("status = %q, want ok", health.Status)
	}
	if !health.Timestamp.Equal(fixed) || health.Timestamp.Location() != time.UTC {
		t.Errorf("timestamp = %v, want %v in UTC", health.Timestamp, fixed)
	}
}

func TestHealthCheck_StoreDown(t *testing.T) {
	svc := NewHealthService(&mockHealthProbe{err: errStoreDown})

	_, err := svc.Check(context.Background())
	if !errors.Is(err, errStoreDown) {
		t.Errorf("expected store error, got %v", err)
	}
}
