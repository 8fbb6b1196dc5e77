package services

import (
	"context"
	"testing"

	"salestrack/internal/core/domain"
)

func TestCreateDealerNormalizesType(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"Dealer", domain.DealerTypeDealer, false},
		{"SUB-DEALER", domain.DealerTypeSubDealer, false},
		{"subdealer", domain.DealerTypeSubDealer, false},
		{"distributor", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run("type="+tt.in, func(t *testing.T) {
			svc := NewDealerService(newRepos(t).Dealers)
			dealer, err := svc.Create(context.Background(), 1, &CreateDealerInput{Name: "Shree", Type: tt.in})
			if tt.wantErr {
				assertKind(t, err, domain.ErrInvalidInput)
				return
			}
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if dealer.Type != tt.want || dealer.Approved || dealer.CreatedBy != 1 {
				t.Errorf("dealer = %+v", dealer)
			}
		})
	}
}

func TestListAndApproveDealers(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)
	svc := NewDealerService(repos.Dealers)

	inputs := []CreateDealerInput{
		{Name: "Zenith Agencies", Type: "dealer", City: "Pune"},
		{Name: "Apex", Type: "sub-dealer", City: "Nashik"},
		{Name: "Metro", Type: "dealer", City: "Mumbai"},
	}
	var ids []uint
	for i := range inputs {
		d, err := svc.Create(ctx, 1, &inputs[i])
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		ids = append(ids, d.ID)
	}

	approved, err := svc.Approve(ctx, ids[0])
	if err != nil {
		t.Fatalf("Approve() error = %v", err)
	}
	if !approved.Approved {
		t.Error("Approve() left dealer unapproved")
	}
	again, err := svc.Approve(ctx, ids[0])
	if err != nil || !again.Approved {
		t.Errorf("second Approve() = %v, %v", again, err)
	}

	tests := []struct {
		name  string
		query ListDealersQuery
		want  []string
	}{
		{"all sorted by name", ListDealersQuery{}, []string{"Apex", "Metro", "Zenith Agencies"}},
		{"search matches city", ListDealersQuery{Search: "pun"}, []string{"Zenith Agencies"}},
		{"search matches name", ListDealersQuery{Search: "METRO"}, []string{"Metro"}},
		{"type", ListDealersQuery{Type: "sub-dealer"}, []string{"Apex"}},
		{"approved only", ListDealersQuery{Approved: "true"}, []string{"Zenith Agencies"}},
		{"pending only", ListDealersQuery{Approved: "false"}, []string{"Apex", "Metro"}},
		{"approved must be literal", ListDealersQuery{Approved: "1"}, []string{"Apex", "Metro", "Zenith Agencies"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dealers, err := svc.List(ctx, tt.query)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			var got []string
			for _, d := range dealers {
				got = append(got, d.Name)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("names = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("names = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}

	_, err = svc.Approve(ctx, 999)
	assertKind(t, err, domain.ErrNotFound)
}
