package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"salestrack/internal/adapters/persistence/models"
	"salestrack/internal/core/domain"
	"salestrack/internal/pkg/flex"

	"github.com/xuri/excelize/v2"
)

func TestVisitsReportDistance(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)
	u := createUser(t, repos, "Asha", "asha@example.com", domain.RoleEmployee)
	dealer := &models.Dealer{Name: "Alpha", Type: domain.DealerTypeDealer, Lat: ptr(18.0), Lng: ptr(73.0), CreatedBy: u.ID}
	if err := repos.Dealers.Create(ctx, dealer); err != nil {
		t.Fatalf("create dealer: %v", err)
	}
	noPos := createDealer(t, repos, "Beta", "Pune", u.ID)

	visits := NewVisitService(repos.Visits, repos.Dealers)
	visits.now = fixedClock(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	if _, err := visits.CheckIn(ctx, u.ID, &CheckInInput{
		DealerID: flex.NewFloat(float64(dealer.ID)), Lat: flex.NewFloat(19.0), Lng: flex.NewFloat(73.0),
	}); err != nil {
		t.Fatalf("CheckIn() error = %v", err)
	}
	if _, err := visits.CheckIn(ctx, u.ID, &CheckInInput{
		DealerID: flex.NewFloat(float64(noPos.ID)), Lat: flex.NewFloat(19.0), Lng: flex.NewFloat(73.0),
	}); err != nil {
		t.Fatalf("CheckIn() error = %v", err)
	}

	svc := NewReportService(repos)
	rows, err := svc.Visits(ctx, VisitsReportQuery{From: "2025-06-01", To: "2025-06-01"})
	if err != nil {
		t.Fatalf("Visits() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2", len(rows))
	}
	for _, v := range rows {
		if v.User == nil || v.Dealer == nil {
			t.Errorf("visit %d missing joins", v.ID)
		}
		switch v.DealerID {
		case dealer.ID:
			// one degree of latitude
			if v.DistanceFromDealerM == nil || *v.DistanceFromDealerM < 110000 || *v.DistanceFromDealerM > 112000 {
				t.Errorf("distance = %v, want about 111 km", v.DistanceFromDealerM)
			}
		case noPos.ID:
			if v.DistanceFromDealerM != nil {
				t.Errorf("distance = %v for dealer without position", *v.DistanceFromDealerM)
			}
		}
	}
}

func TestReportsRequireRange(t *testing.T) {
	ctx := context.Background()
	svc := NewReportService(newRepos(t))

	_, err := svc.Attendance(ctx, AttendanceReportQuery{From: "2025-06-01"})
	assertKind(t, err, domain.ErrInvalidInput)

	_, err = svc.Visits(ctx, VisitsReportQuery{From: "2025-06-01", To: "June"})
	assertKind(t, err, domain.ErrInvalidInput)

	_, err = svc.ExportClaims(ctx, ListClaimsQuery{})
	assertKind(t, err, domain.ErrInvalidInput)
}

func TestAttendanceReportBoundaries(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)
	u := createUser(t, repos, "Asha", "asha@example.com", domain.RoleEmployee)
	att := NewAttendanceService(repos.Attendance)

	for _, ts := range []string{
		"2025-05-31T23:59:59.999Z",
		"2025-06-01T00:00:00Z",
		"2025-06-01T23:59:59.999Z",
		"2025-06-02T00:00:00Z",
	} {
		if _, err := att.Mark(ctx, u.ID, &MarkAttendanceInput{Timestamp: ts, Mode: "in"}); err != nil {
			t.Fatalf("Mark(%s) error = %v", ts, err)
		}
	}

	rows, err := NewReportService(repos).Attendance(ctx, AttendanceReportQuery{From: "2025-06-01", To: "2025-06-01"})
	if err != nil {
		t.Fatalf("Attendance() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, want both edges of the day", len(rows))
	}
	if rows[0].User == nil || rows[0].User.Email != "asha@example.com" {
		t.Errorf("user = %+v", rows[0].User)
	}
}

func TestExportClaimsWorkbook(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)
	u := createUser(t, repos, "Asha", "asha@example.com", domain.RoleEmployee)
	claims := NewClaimService(repos.Claims)
	for _, amount := range []float64{40, 70} {
		if _, err := claims.Create(ctx, u.ID, &CreateClaimInput{Date: "2025-06-02", Amount: flex.NewFloat(amount)}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	svc := NewReportService(repos)
	svc.now = fixedClock(time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC))
	body, err := svc.ExportClaims(ctx, ListClaimsQuery{From: "2025-06-01", To: "2025-06-30"})
	if err != nil {
		t.Fatalf("ExportClaims() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Claims")
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	// title, generated, blank, header, two claims, total
	if len(rows) != 7 {
		t.Fatalf("rows = %d, want 7", len(rows))
	}
	if rows[3][0] != "ID" || rows[4][1] != "Asha" {
		t.Errorf("header/data = %v / %v", rows[3], rows[4])
	}
	total := rows[6]
	if len(total) < 6 || total[1] != "Total" || total[5] != "110" {
		t.Errorf("total row = %v", total)
	}
}

func TestDealersReportOrderedByName(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)
	u := createUser(t, repos, "Asha", "asha@example.com", domain.RoleEmployee)
	for _, name := range []string{"Metro", "Apex", "Zenith"} {
		createDealer(t, repos, name, "Pune", u.ID)
	}

	dealers, err := NewReportService(repos).Dealers(ctx)
	if err != nil {
		t.Fatalf("Dealers() error = %v", err)
	}
	want := []string{"Apex", "Metro", "Zenith"}
	if len(dealers) != len(want) {
		t.Fatalf("len = %d, want %d", len(dealers), len(want))
	}
	for i, d := range dealers {
		if d.Name != want[i] {
			t.Errorf("dealers[%d] = %q, want %q", i, d.Name, want[i])
		}
		if d.CreatedByUser == nil || d.CreatedByUser.Name != "Asha" {
			t.Errorf("dealers[%d] creator = %+v", i, d.CreatedByUser)
		}
	}
}
