package services

import (
	"context"

	"salestrack/internal/adapters/persistence/models"
	"salestrack/internal/adapters/persistence/repositories"
	"salestrack/internal/core/domain"
	"salestrack/internal/pkg/flex"
)

// LocationService keeps the last known position per user
type LocationService struct {
	repo repositories.LocationRepository
}

// NewLocationService creates a new location service
func NewLocationService(repo repositories.LocationRepository) *LocationService {
	return &LocationService{repo: repo}
}

// PingInput is one location ping
type PingInput struct {
	Lat flex.Float `json:"lat" swaggertype:"number"`
	Lng flex.Float `json:"lng" swaggertype:"number"`
}

// Ping overwrites the caller's last location
func (s *LocationService) Ping(ctx context.Context, userID uint, input *PingInput) (*models.LastLocation, error) {
	if !input.Lat.Valid || !input.Lng.Valid {
		return nil, domain.Validation("lat and lng are required")
	}
	return s.repo.Upsert(ctx, userID, input.Lat.Value, input.Lng.Value)
}

// ListAll returns every user's last location
func (s *LocationService) ListAll(ctx context.Context) ([]*models.LastLocation, error) {
	return s.repo.ListAll(ctx)
}
