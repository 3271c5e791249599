package services

import (
	"context"

	"portfolio-backend/internal/database"
)

// HealthService reports service liveness
type HealthService struct {
	name string
}

// NewHealthService creates a new health service
func NewHealthService(name string) *HealthService {
	return &HealthService{name: name}
}

// Check reports the service status, degraded when the store is unreachable.
func (s *HealthService) Check(ctx context.Context) (status, service string) {
	status = "healthy"
	if err := database.HealthCheck(); err != nil {
		status = "degraded"
	}
	return status, s.name
}
