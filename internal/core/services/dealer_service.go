package services

import (
	"context"
	"strings"

	"salestrack/internal/adapters/persistence/models"
	"salestrack/internal/adapters/persistence/repositories"
	"salestrack/internal/core/domain"
	"salestrack/internal/pkg/flex"
)

// DealerService manages dealers and their approval
type DealerService struct {
	repo repositories.DealerRepository
}

// NewDealerService creates a new dealer service
func NewDealerService(repo repositories.DealerRepository) *DealerService {
	return &DealerService{repo: repo}
}

// CreateDealerInput represents a dealer submitted from the field
type CreateDealerInput struct {
	Name          string     `json:"name"`
	Type          string     `json:"type"`
	Address       string     `json:"address"`
	City          string     `json:"city"`
	Phone         string     `json:"phone"`
	ContactName   string     `json:"contactName"`
	ContactMobile string     `json:"contactMobile"`
	Lat           flex.Float `json:"lat" swaggertype:"number"`
	Lng           flex.Float `json:"lng" swaggertype:"number"`
}

// ListDealersQuery holds the raw list filters
type ListDealersQuery struct {
	Search   string
	Type     string
	Approved string
}

// Create stores a new, unapproved dealer
func (s *DealerService) Create(ctx context.Context, userID uint, input *CreateDealerInput) (*models.Dealer, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || strings.TrimSpace(input.Type) == "" {
		return nil, domain.Validation("name and type are required")
	}
	dealerType, ok := domain.NormalizeDealerType(input.Type)
	if !ok {
		return nil, domain.Validation("type must be dealer or sub-dealer")
	}

	dealer := &models.Dealer{
		Name:          name,
		Type:          dealerType,
		Address:       nonEmpty(input.Address),
		City:          nonEmpty(input.City),
		Phone:         nonEmpty(input.Phone),
		ContactName:   nonEmpty(input.ContactName),
		ContactMobile: nonEmpty(input.ContactMobile),
		Lat:           input.Lat.Ptr(),
		Lng:           input.Lng.Ptr(),
		CreatedBy:     userID,
		Approved:      false,
	}
	if err := s.repo.Create(ctx, dealer); err != nil {
		return nil, err
	}
	return dealer, nil
}

// List filters dealers. approved is applied only for the literal "true" or "false".
func (s *DealerService) List(ctx context.Context, q ListDealersQuery) ([]*models.Dealer, error) {
	filter := repositories.DealerFilter{
		Search: strings.TrimSpace(q.Search),
		Type:   strings.TrimSpace(q.Type),
	}
	switch q.Approved {
	case "true":
		v := true
		filter.Approved = &v
	case "false":
		v := false
		filter.Approved = &v
	}
	return s.repo.List(ctx, filter)
}

// Approve marks a dealer approved
func (s *DealerService) Approve(ctx context.Context, id uint) (*models.Dealer, error) {
	dealer, err := s.repo.Approve(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Dealer not found")
	}
	return dealer, nil
}
