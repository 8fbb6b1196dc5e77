package services

import (
	"context"
	"strings"
	"time"

	"salestrack/internal/adapters/persistence/models"
	"salestrack/internal/adapters/persistence/repositories"
	"salestrack/internal/core/domain"
	"salestrack/internal/pkg/daterange"
	"salestrack/internal/pkg/flex"
)

// ClaimService handles TA/DA claims
type ClaimService struct {
	repo repositories.ClaimRepository
	now  func() time.Time
}

// NewClaimService creates a new claim service
func NewClaimService(repo repositories.ClaimRepository) *ClaimService {
	return &ClaimService{repo: repo, now: time.Now}
}

// CreateClaimInput represents a submitted claim
type CreateClaimInput struct {
	Date        string     `json:"date"`
	Amount      flex.Float `json:"amount" swaggertype:"number"`
	Type        string     `json:"type"`
	Description string     `json:"description"`
	DistanceKm  flex.Float `json:"distanceKm" swaggertype:"number"`
}

// ListClaimsQuery holds the raw admin filters
type ListClaimsQuery struct {
	From   string
	To     string
	UserID string
	Status string
}

// SetStatusInput changes a claim's status
type SetStatusInput struct {
	Status string `json:"status"`
}

// Create stores a PENDING claim
func (s *ClaimService) Create(ctx context.Context, userID uint, input *CreateClaimInput) (*models.Claim, error) {
	date, err := parseCalendarDate(input.Date)
	if err != nil {
		return nil, err
	}
	if !input.Amount.Valid {
		return nil, domain.Validation("amount is required and must be a number")
	}
	if input.Amount.Value <= 0 {
		return nil, domain.Validation("amount must be greater than zero")
	}

	claimType := strings.TrimSpace(input.Type)
	if claimType == "" {
		claimType = domain.DefaultClaimType
	}

	var distance *float64
	if input.DistanceKm.Valid && input.DistanceKm.Value >= 0 {
		distance = input.DistanceKm.Ptr()
	}

	claim := &models.Claim{
		UserID:      userID,
		Date:        date,
		Amount:      input.Amount.Value,
		Type:        claimType,
		Description: nonEmpty(input.Description),
		DistanceKm:  distance,
		Status:      domain.ClaimPending,
	}
	if err := s.repo.Create(ctx, claim); err != nil {
		return nil, err
	}
	return claim, nil
}

// ListMine returns the caller's claims, optionally within [from, to]
func (s *ClaimService) ListMine(ctx context.Context, userID uint, from, to string) ([]*models.Claim, error) {
	rng, err := daterange.Optional(from, to)
	if err != nil {
		return nil, rangeError(err)
	}
	return s.repo.List(ctx, repositories.ClaimFilter{Range: rng, UserID: &userID})
}

// ListAll returns claims of every user with requester and approver joined
func (s *ClaimService) ListAll(ctx context.Context, q ListClaimsQuery) ([]*models.Claim, error) {
	filter, err := claimFilter(q)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

func claimFilter(q ListClaimsQuery) (repositories.ClaimFilter, error) {
	rng, err := daterange.Optional(q.From, q.To)
	if err != nil {
		return repositories.ClaimFilter{}, rangeError(err)
	}
	filter := repositories.ClaimFilter{Range: rng, WithUsers: true}
	if id, ok := parseID(q.UserID); ok {
		filter.UserID = &id
	}
	if status, ok := domain.ParseClaimStatusFilter(q.Status); ok {
		filter.Status = status
	}
	return filter, nil
}

// SetStatus moves a claim to any status. Non-PENDING stamps the approver,
// PENDING clears the stamp.
func (s *ClaimService) SetStatus(ctx context.Context, adminID, claimID uint, status string) (*models.Claim, error) {
	if !domain.IsClaimStatus(status) {
		return nil, domain.Validation("status must be one of PENDING, APPROVED, REJECTED")
	}

	update := repositories.ClaimStatusUpdate{ClaimID: claimID, Status: status}
	if status != domain.ClaimPending {
		at := s.now().UTC()
		approver := adminID
		update.ApprovedBy = &approver
		update.ApprovedAt = &at
	}

	claim, err := s.repo.UpdateStatus(ctx, update)
	if err != nil {
		return nil, notFoundAs(err, "Claim not found")
	}
	return claim, nil
}
