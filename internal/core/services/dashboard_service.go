package services

import (
	"context"
	"time"

	"salestrack/internal/adapters/persistence/repositories"
	"salestrack/internal/core/domain"
	"salestrack/internal/pkg/daterange"
)

// DashboardService handles dashboard operations
type DashboardService struct {
	repos repositories.Set
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(repos repositories.Set) *DashboardService {
	return &DashboardService{repos: repos}
}

// DashboardSummary holds the counters of one UTC day
type DashboardSummary struct {
	Date           string `json:"date"`
	PresentToday   int64  `json:"presentToday"`
	VisitsToday    int64  `json:"visitsToday"`
	PJPToday       int64  `json:"pjpToday"`
	ClaimsToday    int64  `json:"claimsToday"`
	TotalEmployees int64  `json:"totalEmployees"`
}

// Summary counts activity on the UTC day containing at
func (s *DashboardService) Summary(ctx context.Context, at time.Time) (*DashboardSummary, error) {
	day := daterange.Day(at)
	data := &DashboardSummary{Date: day.From.Format(daterange.Layout)}

	var err error
	if data.PresentToday, err = s.repos.Attendance.CountPresentUsers(ctx, day); err != nil {
		return nil, err
	}
	if data.VisitsToday, err = s.repos.Visits.CountCheckIns(ctx, day); err != nil {
		return nil, err
	}
	if data.PJPToday, err = s.repos.Plans.CountInRange(ctx, day); err != nil {
		return nil, err
	}
	if data.ClaimsToday, err = s.repos.Claims.CountInRange(ctx, day); err != nil {
		return nil, err
	}
	if data.TotalEmployees, err = s.repos.Users.CountByRole(ctx, domain.RoleEmployee); err != nil {
		return nil, err
	}
	return data, nil
}
