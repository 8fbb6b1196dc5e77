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

// PlanService manages daily route plans (PJP)
type PlanService struct {
	plans   repositories.PlanRepository
	dealers repositories.DealerRepository
}

// NewPlanService creates a new plan service
func NewPlanService(plans repositories.PlanRepository, dealers repositories.DealerRepository) *PlanService {
	return &PlanService{plans: plans, dealers: dealers}
}

// PlanItemInput is one stop of a plan
type PlanItemInput struct {
	DealerID    flex.Float `json:"dealerId" swaggertype:"integer"`
	Sequence    flex.Float `json:"sequence" swaggertype:"integer"`
	PlannedTime string     `json:"plannedTime"`
}

// SavePlanInput replaces the plan of one day
type SavePlanInput struct {
	Date  string          `json:"date"`
	Notes string          `json:"notes"`
	Items []PlanItemInput `json:"items"`
}

// Save upserts the plan for (user, date) and replaces all of its items
func (s *PlanService) Save(ctx context.Context, userID uint, input *SavePlanInput) (*models.RoutePlan, error) {
	// 1. Validate date and items
	date, err := parseCalendarDate(input.Date)
	if err != nil {
		return nil, err
	}
	if len(input.Items) == 0 {
		return nil, domain.Validation("items must be a non-empty array")
	}

	items := make([]models.RoutePlanItem, 0, len(input.Items))
	for i, in := range input.Items {
		dealerID, ok := in.DealerID.ID()
		if !ok {
			return nil, domain.Validation("Each item must have dealerId")
		}
		if _, err := s.dealers.GetByID(ctx, dealerID); err != nil {
			return nil, notFoundAs(err, "Dealer not found")
		}

		// 2. Sequence falls back to the 1-based position
		seq := i + 1
		if n, ok := in.Sequence.ID(); ok {
			seq = int(n)
		}

		items = append(items, models.RoutePlanItem{
			DealerID:    dealerID,
			Sequence:    seq,
			PlannedTime: parseOptionalTime(in.PlannedTime),
		})
	}

	// 3. Replace in one transaction
	plan := &models.RoutePlan{
		UserID: userID,
		Date:   date,
		Notes:  nonEmpty(input.Notes),
		Items:  items,
	}
	if err := s.plans.Replace(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// ListMine returns the caller's plans in [from, to]
func (s *PlanService) ListMine(ctx context.Context, userID uint, from, to string) ([]*models.RoutePlan, error) {
	rng, err := daterange.Parse(from, to)
	if err != nil {
		return nil, rangeError(err)
	}
	return s.plans.ListByUser(ctx, userID, rng, false)
}

// ListForUser returns any user's plans in [from, to] with the user joined
func (s *PlanService) ListForUser(ctx context.Context, targetUserID uint, from, to string) ([]*models.RoutePlan, error) {
	rng, err := daterange.Parse(from, to)
	if err != nil {
		return nil, rangeError(err)
	}
	return s.plans.ListByUser(ctx, targetUserID, rng, true)
}

// parseCalendarDate accepts YYYY-MM-DD or an RFC3339 instant and returns
// midnight UTC of that day
func parseCalendarDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, domain.Validation("date is required")
	}
	if day, err := daterange.ParseDay(raw); err == nil {
		return day, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return daterange.StartOfDay(t), nil
	}
	return time.Time{}, domain.Validation("Invalid date format, expected YYYY-MM-DD")
}

func parseOptionalTime(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}
