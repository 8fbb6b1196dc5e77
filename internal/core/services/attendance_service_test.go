package services

import (
	"context"
	"testing"
	"time"

	"salestrack/internal/core/domain"
	"salestrack/internal/pkg/flex"
)

func TestMarkNormalizesMode(t *testing.T) {
	tests := []struct {
		mode string
		want *string
	}{
		{"in", ptr("IN")},
		{"In", ptr("IN")},
		{"OUT", ptr("OUT")},
		{"out", ptr("OUT")},
		{"xyz", nil},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run("mode="+tt.mode, func(t *testing.T) {
			svc := NewAttendanceService(newRepos(t).Attendance)
			rec, err := svc.Mark(context.Background(), 1, &MarkAttendanceInput{Mode: tt.mode})
			if err != nil {
				t.Fatalf("Mark() error = %v", err)
			}
			switch {
			case tt.want == nil && rec.Mode != nil:
				t.Errorf("Mode = %q, want nil", *rec.Mode)
			case tt.want != nil && (rec.Mode == nil || *rec.Mode != *tt.want):
				t.Errorf("Mode = %v, want %q", rec.Mode, *tt.want)
			}
		})
	}
}

func TestMarkTimestamp(t *testing.T) {
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	svc := NewAttendanceService(newRepos(t).Attendance)
	svc.now = fixedClock(now)
	ctx := context.Background()

	rec, err := svc.Mark(ctx, 1, &MarkAttendanceInput{Lat: flex.NewFloat(18.5), Lng: flex.NewFloat(73.8), DeviceID: " "})
	if err != nil {
		t.Fatalf("Mark() error = %v", err)
	}
	if !rec.Timestamp.Equal(now) {
		t.Errorf("Timestamp = %v, want %v", rec.Timestamp, now)
	}
	if rec.Lat == nil || *rec.Lat != 18.5 {
		t.Errorf("Lat = %v", rec.Lat)
	}
	if rec.DeviceID != nil {
		t.Errorf("blank DeviceID stored as %q", *rec.DeviceID)
	}

	rec, err = svc.Mark(ctx, 1, &MarkAttendanceInput{Timestamp: "2025-05-31T22:15:00+05:30"})
	if err != nil {
		t.Fatalf("Mark() error = %v", err)
	}
	want := time.Date(2025, 5, 31, 16, 45, 0, 0, time.UTC)
	if !rec.Timestamp.Equal(want) || rec.Timestamp.Location() != time.UTC {
		t.Errorf("Timestamp = %v, want %v UTC", rec.Timestamp, want)
	}

	_, err = svc.Mark(ctx, 1, &MarkAttendanceInput{Timestamp: "yesterday"})
	assertKind(t, err, domain.ErrInvalidInput)
}

func TestListMineReturnsNewestFifty(t *testing.T) {
	repos := newRepos(t)
	svc := NewAttendanceService(repos.Attendance)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 60; i++ {
		svc.now = fixedClock(base.Add(time.Duration(i) * time.Minute))
		if _, err := svc.Mark(ctx, 7, &MarkAttendanceInput{}); err != nil {
			t.Fatalf("Mark() error = %v", err)
		}
	}
	if _, err := svc.Mark(ctx, 8, &MarkAttendanceInput{}); err != nil {
		t.Fatalf("Mark() error = %v", err)
	}

	rows, err := svc.ListMine(ctx, 7)
	if err != nil {
		t.Fatalf("ListMine() error = %v", err)
	}
	if len(rows) != MineLimit {
		t.Fatalf("len = %d, want %d", len(rows), MineLimit)
	}
	if !rows[0].Timestamp.Equal(base.Add(59 * time.Minute)) {
		t.Errorf("first = %v, want newest", rows[0].Timestamp)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Timestamp.After(rows[i-1].Timestamp) {
			t.Fatalf("rows not newest first at %d", i)
		}
		if rows[i].UserID != 7 {
			t.Fatalf("row %d belongs to user %d", i, rows[i].UserID)
		}
	}
}
