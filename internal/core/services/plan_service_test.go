package services

import (
	"context"
	"testing"
	"time"

	"salestrack/internal/core/domain"
	"salestrack/internal/pkg/flex"
)

func TestSavePlanReplacesItems(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)
	u := createUser(t, repos, "Asha", "asha@example.com", domain.RoleEmployee)
	a := createDealer(t, repos, "Alpha", "Pune", u.ID)
	b := createDealer(t, repos, "Beta", "Pune", u.ID)
	c := createDealer(t, repos, "Gamma", "Pune", u.ID)
	svc := NewPlanService(repos.Plans, repos.Dealers)

	first, err := svc.Save(ctx, u.ID, &SavePlanInput{
		Date:  "2025-06-03",
		Notes: "morning round",
		Items: []PlanItemInput{
			{DealerID: flex.NewFloat(float64(a.ID)), Sequence: flex.NewFloat(2)},
			{DealerID: flex.NewFloat(float64(b.ID)), Sequence: flex.NewFloat(1), PlannedTime: "2025-06-03T10:30:00Z"},
		},
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if len(first.Items) != 2 || first.Items[0].DealerID != b.ID || first.Items[0].PlannedTime == nil {
		t.Fatalf("items = %+v, want Beta first with planned time", first.Items)
	}

	second, err := svc.Save(ctx, u.ID, &SavePlanInput{
		Date: "2025-06-03T18:00:00+00:00",
		Items: []PlanItemInput{
			{DealerID: flex.NewFloat(float64(c.ID)), PlannedTime: "after lunch"},
			{DealerID: flex.NewFloat(float64(a.ID)), Sequence: flex.NewFloat(-1)},
		},
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("plan id = %d, want same plan %d", second.ID, first.ID)
	}
	if second.Notes != nil {
		t.Errorf("Notes = %q, want cleared", *second.Notes)
	}
	if len(second.Items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(second.Items))
	}
	for i, it := range second.Items {
		if it.Sequence != i+1 {
			t.Errorf("item %d sequence = %d, want %d", i, it.Sequence, i+1)
		}
		if it.Dealer == nil {
			t.Errorf("item %d dealer not joined", i)
		}
	}
	if second.Items[0].DealerID != c.ID || second.Items[0].PlannedTime != nil {
		t.Errorf("first item = %+v, want Gamma without planned time", second.Items[0])
	}

	plans, err := svc.ListMine(ctx, u.ID, "2025-06-03", "2025-06-03")
	if err != nil {
		t.Fatalf("ListMine() error = %v", err)
	}
	if len(plans) != 1 || len(plans[0].Items) != 2 {
		t.Fatalf("ListMine() = %d plans, want one plan with two items", len(plans))
	}
	if want := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC); !plans[0].Date.Equal(want) {
		t.Errorf("Date = %v, want %v", plans[0].Date, want)
	}
	if plans[0].User != nil {
		t.Error("ListMine() joined the user")
	}

	forAdmin, err := svc.ListForUser(ctx, u.ID, "2025-06-01", "2025-06-30")
	if err != nil {
		t.Fatalf("ListForUser() error = %v", err)
	}
	if len(forAdmin) != 1 || forAdmin[0].User == nil || forAdmin[0].User.Name != "Asha" {
		t.Errorf("ListForUser() = %+v", forAdmin)
	}
}

func TestSavePlanValidation(t *testing.T) {
	repos := newRepos(t)
	u := createUser(t, repos, "Asha", "asha@example.com", domain.RoleEmployee)
	d := createDealer(t, repos, "Alpha", "Pune", u.ID)
	svc := NewPlanService(repos.Plans, repos.Dealers)
	item := PlanItemInput{DealerID: flex.NewFloat(float64(d.ID))}

	tests := []struct {
		name  string
		input SavePlanInput
		kind  error
	}{
		{"missing date", SavePlanInput{Items: []PlanItemInput{item}}, domain.ErrInvalidInput},
		{"bad date", SavePlanInput{Date: "03-06-2025", Items: []PlanItemInput{item}}, domain.ErrInvalidInput},
		{"no items", SavePlanInput{Date: "2025-06-03"}, domain.ErrInvalidInput},
		{"item without dealer", SavePlanInput{Date: "2025-06-03", Items: []PlanItemInput{item, {}}}, domain.ErrInvalidInput},
		{"unknown dealer", SavePlanInput{Date: "2025-06-03", Items: []PlanItemInput{{DealerID: flex.NewFloat(999)}}}, domain.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Save(context.Background(), u.ID, &tt.input)
			assertKind(t, err, tt.kind)
		})
	}
}

func TestListPlansRequiresRange(t *testing.T) {
	repos := newRepos(t)
	svc := NewPlanService(repos.Plans, repos.Dealers)

	_, err := svc.ListMine(context.Background(), 1, "2025-06-01", "")
	assertKind(t, err, domain.ErrInvalidInput)
	if err.Error() != "from and to are required (YYYY-MM-DD)" {
		t.Errorf("message = %q", err.Error())
	}
}
