package services

import (
	"context"

	"github.com/dmitrijs2005/wandergenie/internal/client/models"
)

type HealthAPI interface {
	Health(ctx context.Context) (*models.Health, error)
}

// HealthService probes backend liveness.
type HealthService interface {
	Ping(ctx context.Context) (*models.Health, error)
}

type healthService struct{ api HealthAPI }

func NewHealthService(api HealthAPI) HealthService { return &healthService{api: api} }

func (h *healthService) Ping(ctx context.Context) (*models.Health, error) {
	return h.api.Health(ctx)
}
