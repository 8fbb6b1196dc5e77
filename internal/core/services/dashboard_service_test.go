package services

import (
	"context"
	"testing"
	"time"

	"salestrack/internal/core/domain"
	"salestrack/internal/pkg/flex"
)

func TestDashboardSummary(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)
	createUser(t, repos, "Admin", "admin@example.com", domain.RoleAdmin)
	asha := createUser(t, repos, "Asha", "asha@example.com", domain.RoleEmployee)
	ravi := createUser(t, repos, "Ravi", "ravi@example.com", domain.RoleEmployee)
	meena := createUser(t, repos, "Meena", "meena@example.com", domain.RoleEmployee)
	dealer := createDealer(t, repos, "Alpha", "Pune", asha.ID)

	today := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	att := NewAttendanceService(repos.Attendance)
	punch := func(userID uint, at time.Time, mode string) {
		att.now = fixedClock(at)
		if _, err := att.Mark(ctx, userID, &MarkAttendanceInput{Mode: mode}); err != nil {
			t.Fatalf("Mark() error = %v", err)
		}
	}
	punch(asha.ID, today, "IN")
	punch(asha.ID, today.Add(time.Hour), "IN")
	punch(ravi.ID, today, "in")
	punch(meena.ID, today, "OUT")
	punch(meena.ID, yesterday, "IN")

	visits := NewVisitService(repos.Visits, repos.Dealers)
	for _, at := range []time.Time{today, today.Add(time.Minute), yesterday} {
		visits.now = fixedClock(at)
		if _, err := visits.CheckIn(ctx, asha.ID, &CheckInInput{DealerID: flex.NewFloat(float64(dealer.ID))}); err != nil {
			t.Fatalf("CheckIn() error = %v", err)
		}
	}

	plans := NewPlanService(repos.Plans, repos.Dealers)
	item := []PlanItemInput{{DealerID: flex.NewFloat(float64(dealer.ID))}}
	for _, p := range []struct {
		user uint
		date string
	}{{asha.ID, "2025-06-10"}, {ravi.ID, "2025-06-10"}, {asha.ID, "2025-06-11"}} {
		if _, err := plans.Save(ctx, p.user, &SavePlanInput{Date: p.date, Items: item}); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	claims := NewClaimService(repos.Claims)
	if _, err := claims.Create(ctx, asha.ID, &CreateClaimInput{Date: "2025-06-10", Amount: flex.NewFloat(5)}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := NewDashboardService(repos).Summary(ctx, today)
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	want := DashboardSummary{
		Date:           "2025-06-10",
		PresentToday:   2,
		VisitsToday:    2,
		PJPToday:       2,
		ClaimsToday:    1,
		TotalEmployees: 3,
	}
	if *got != want {
		t.Errorf("Summary() = %+v, want %+v", *got, want)
	}
}

func TestCronServiceStart(t *testing.T) {
	dashboard := NewDashboardService(newRepos(t))

	disabled := NewCronService(dashboard, "")
	if err := disabled.Start(); err != nil {
		t.Errorf("Start() with empty schedule error = %v", err)
	}
	disabled.Stop()

	if err := NewCronService(dashboard, "not a schedule").Start(); err == nil {
		t.Error("Start() accepted an invalid schedule")
	}

	svc := NewCronService(dashboard, "5 0 * * *")
	if err := svc.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	svc.logDailySummary()
	svc.Stop()
}
