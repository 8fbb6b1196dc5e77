package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"salestrack/internal/adapters/persistence/models"
	"salestrack/internal/adapters/persistence/repositories"
	"salestrack/internal/core/domain"
	"salestrack/internal/pkg/daterange"
	"salestrack/internal/pkg/flex"
)

// Visit errors
var (
	ErrVisitNotFound        = domain.NotFound("Visit not found or not yours")
	ErrVisitAlreadyFinished = domain.Conflict("Visit already checked out")
)

// VisitService handles dealer check-in and check-out
type VisitService struct {
	visits  repositories.VisitRepository
	dealers repositories.DealerRepository
	now     func() time.Time
}

// NewVisitService creates a new visit service
func NewVisitService(visits repositories.VisitRepository, dealers repositories.DealerRepository) *VisitService {
	return &VisitService{visits: visits, dealers: dealers, now: time.Now}
}

// CheckInInput starts a visit
type CheckInInput struct {
	DealerID flex.Float `json:"dealerId" swaggertype:"integer"`
	Lat      flex.Float `json:"lat" swaggertype:"number"`
	Lng      flex.Float `json:"lng" swaggertype:"number"`
	Notes    string     `json:"notes"`
}

// CheckOutInput ends a visit
type CheckOutInput struct {
	Lat flex.Float `json:"lat" swaggertype:"number"`
	Lng flex.Float `json:"lng" swaggertype:"number"`
}

// ListVisitsQuery holds the raw filters of the caller's history
type ListVisitsQuery struct {
	From     string
	To       string
	DealerID string
}

// CheckIn opens a visit at an existing dealer
func (s *VisitService) CheckIn(ctx context.Context, userID uint, input *CheckInInput) (*models.Visit, error) {
	dealerID, ok := input.DealerID.ID()
	if !ok {
		return nil, domain.Validation("dealerId is required")
	}
	if _, err := s.dealers.GetByID(ctx, dealerID); err != nil {
		return nil, notFoundAs(err, "Dealer not found")
	}

	visit := &models.Visit{
		UserID:    userID,
		DealerID:  dealerID,
		CheckInAt: s.now().UTC(),
		Lat:       input.Lat.Ptr(),
		Lng:       input.Lng.Ptr(),
		Notes:     nonEmpty(input.Notes),
	}
	if err := s.visits.Create(ctx, visit); err != nil {
		return nil, err
	}
	return visit, nil
}

// CheckOut closes the caller's own open visit
func (s *VisitService) CheckOut(ctx context.Context, userID, visitID uint, input *CheckOutInput) (*models.Visit, error) {
	closed, err := s.visits.CheckOut(ctx, repositories.VisitCheckOut{
		VisitID: visitID,
		UserID:  userID,
		At:      s.now().UTC(),
		Lat:     input.Lat.Ptr(),
		Lng:     input.Lng.Ptr(),
	})
	if err != nil {
		return nil, err
	}

	visit, err := s.visits.GetByID(ctx, visitID)
	if err != nil {
		return nil, notFoundAs(err, ErrVisitNotFound.Message)
	}
	if visit.UserID != userID {
		return nil, ErrVisitNotFound
	}
	if !closed {
		return nil, ErrVisitAlreadyFinished
	}

	withDuration(visit)
	return visit, nil
}

// ListMine returns the caller's visits, newest check-in first
func (s *VisitService) ListMine(ctx context.Context, userID uint, q ListVisitsQuery) ([]*models.Visit, error) {
	rng, err := daterange.Optional(q.From, q.To)
	if err != nil {
		return nil, rangeError(err)
	}
	filter := repositories.VisitFilter{Range: rng, UserID: &userID}
	if id, ok := parseID(q.DealerID); ok {
		filter.DealerID = &id
	}

	visits, err := s.visits.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for _, v := range visits {
		v.User = nil
		withDuration(v)
	}
	return visits, nil
}

// withDuration fills durationMinutes for finished visits
func withDuration(v *models.Visit) {
	if v.CheckOutAt == nil {
		return
	}
	minutes := v.CheckOutAt.Sub(v.CheckInAt).Minutes()
	v.DurationMinutes = &minutes
}

// parseID reads a positive integer query value; anything else means no filter
func parseID(raw string) (uint, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
