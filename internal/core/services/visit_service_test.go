package services

import (
	"context"
	"testing"
	"time"

	"salestrack/internal/core/domain"
	"salestrack/internal/pkg/flex"
)

func TestCheckInValidation(t *testing.T) {
	repos := newRepos(t)
	svc := NewVisitService(repos.Visits, repos.Dealers)

	tests := []struct {
		name  string
		input CheckInInput
		kind  error
	}{
		{"missing dealer", CheckInInput{}, domain.ErrInvalidInput},
		{"non-numeric dealer", CheckInInput{DealerID: flex.Float{Present: true}}, domain.ErrInvalidInput},
		{"unknown dealer", CheckInInput{DealerID: flex.NewFloat(404)}, domain.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CheckIn(context.Background(), 1, &tt.input)
			assertKind(t, err, tt.kind)
		})
	}
}

func TestCheckOutOnlyOnce(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)
	owner := createUser(t, repos, "Asha", "asha@example.com", domain.RoleEmployee)
	other := createUser(t, repos, "Ravi", "ravi@example.com", domain.RoleEmployee)
	dealer := createDealer(t, repos, "Shree Traders", "Pune", owner.ID)

	svc := NewVisitService(repos.Visits, repos.Dealers)
	checkIn := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	svc.now = fixedClock(checkIn)

	visit, err := svc.CheckIn(ctx, owner.ID, &CheckInInput{
		DealerID: flex.NewFloat(float64(dealer.ID)),
		Lat:      flex.NewFloat(18.52),
		Lng:      flex.NewFloat(73.85),
		Notes:    "first call",
	})
	if err != nil {
		t.Fatalf("CheckIn() error = %v", err)
	}
	if !visit.IsOpen() || visit.Dealer == nil || visit.Dealer.Name != "Shree Traders" {
		t.Fatalf("CheckIn() = %+v", visit)
	}

	_, err = svc.CheckOut(ctx, other.ID, visit.ID, &CheckOutInput{})
	assertKind(t, err, domain.ErrNotFound)

	_, err = svc.CheckOut(ctx, owner.ID, 9999, &CheckOutInput{})
	assertKind(t, err, domain.ErrNotFound)

	firstOut := checkIn.Add(45 * time.Minute)
	svc.now = fixedClock(firstOut)
	closed, err := svc.CheckOut(ctx, owner.ID, visit.ID, &CheckOutInput{Lat: flex.NewFloat(18.6)})
	if err != nil {
		t.Fatalf("CheckOut() error = %v", err)
	}
	if closed.CheckOutAt == nil || !closed.CheckOutAt.Equal(firstOut) {
		t.Errorf("CheckOutAt = %v, want %v", closed.CheckOutAt, firstOut)
	}
	if closed.DurationMinutes == nil || *closed.DurationMinutes != 45 {
		t.Errorf("DurationMinutes = %v, want 45", closed.DurationMinutes)
	}
	if *closed.Lat != 18.6 || *closed.Lng != 73.85 {
		t.Errorf("position = (%v, %v), want lat overwritten and lng kept", *closed.Lat, *closed.Lng)
	}

	svc.now = fixedClock(firstOut.Add(time.Hour))
	_, err = svc.CheckOut(ctx, owner.ID, visit.ID, &CheckOutInput{})
	assertKind(t, err, domain.ErrConflict)

	stored, err := repos.Visits.GetByID(ctx, visit.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !stored.CheckOutAt.Equal(firstOut) {
		t.Errorf("second check-out moved CheckOutAt to %v", stored.CheckOutAt)
	}
}

func TestListMineVisits(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)
	u := createUser(t, repos, "Asha", "asha@example.com", domain.RoleEmployee)
	d1 := createDealer(t, repos, "Alpha", "Pune", u.ID)
	d2 := createDealer(t, repos, "Beta", "Nashik", u.ID)
	svc := NewVisitService(repos.Visits, repos.Dealers)

	times := []struct {
		at     time.Time
		dealer uint
	}{
		{time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), d1.ID},
		{time.Date(2025, 6, 1, 23, 59, 59, 999e6, time.UTC), d2.ID},
		{time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), d1.ID},
	}
	for _, v := range times {
		svc.now = fixedClock(v.at)
		if _, err := svc.CheckIn(ctx, u.ID, &CheckInInput{DealerID: flex.NewFloat(float64(v.dealer))}); err != nil {
			t.Fatalf("CheckIn() error = %v", err)
		}
	}

	tests := []struct {
		name    string
		query   ListVisitsQuery
		want    int
		wantErr error
	}{
		{"no filter", ListVisitsQuery{}, 3, nil},
		{"single day is inclusive", ListVisitsQuery{From: "2025-06-01", To: "2025-06-01"}, 2, nil},
		{"unknown dealer", ListVisitsQuery{DealerID: "999"}, 0, nil},
		{"half range is ignored", ListVisitsQuery{From: "2025-06-02"}, 3, nil},
		{"bad date", ListVisitsQuery{From: "06/01/2025", To: "2025-06-02"}, 0, domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visits, err := svc.ListMine(ctx, u.ID, tt.query)
			if tt.wantErr != nil {
				assertKind(t, err, tt.wantErr)
				return
			}
			if err != nil {
				t.Fatalf("ListMine() error = %v", err)
			}
			if len(visits) != tt.want {
				t.Errorf("len = %d, want %d", len(visits), tt.want)
			}
		})
	}

	visits, err := svc.ListMine(ctx, u.ID, ListVisitsQuery{DealerID: itoa(d1.ID)})
	if err != nil {
		t.Fatalf("ListMine() error = %v", err)
	}
	if len(visits) != 2 || visits[0].CheckInAt.Before(visits[1].CheckInAt) {
		t.Errorf("dealer filter = %d visits, want 2 newest first", len(visits))
	}
}
