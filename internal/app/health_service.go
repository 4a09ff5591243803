package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/dayboard/internal/ports/primary"
	"github.com/example/dayboard/internal/ports/secondary"
)

// HealthServiceImpl implements the HealthService interface.
type HealthServiceImpl struct {
	probe secondary.HealthProbe
	now   func() time.Time
}

// NewHealthService creates a new HealthService backed by probe.
func NewHealthService(probe secondary.HealthProbe) *HealthServiceImpl {
	return &HealthServiceImpl{probe: probe, now: time.Now}
}

// Check pings the store and reports ok.
func (s *HealthServiceImpl) Check(ctx context.Context) (*primary.Health, error) {
	if err := s.probe.Ping(ctx); err != nil {
		return nil, fmt.Errorf("store unavailable: %w", err)
	}
	return &primary.Health{Status: "ok", Timestamp: s.now().UTC()}, nil
}

// Ensure HealthServiceImpl implements the interface
var _ primary.HealthService = (*HealthServiceImpl)(nil)
