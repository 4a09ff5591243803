package primary

import (
	"context"
	"time"
)

// HealthService defines the primary port for liveness checks.
type HealthService interface {
	// Check reports service health; a store failure is returned as an error.
	Check(ctx context.Context) (*Health, error)
}

// Health is the healthcheck payload.
type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
