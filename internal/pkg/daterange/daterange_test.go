package daterange

import (
	"errors"
	"testing"
	"time"
)

func TestParseBoundaries(t *testing.T) {
	r, err := Parse("2025-01-01", "2025-01-31")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	wantFrom := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2025, 1, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	if !r.From.Equal(wantFrom) {
		t.Errorf("From = %v, want %v", r.From, wantFrom)
	}
	if !r.To.Equal(wantTo) {
		t.Errorf("To = %v, want %v", r.To, wantTo)
	}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"first instant", wantFrom, true},
		{"last millisecond", wantTo, true},
		{"next day midnight", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), false},
		{"previous day", time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC), false},
		{"middle", time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.at); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		wantErr  error
	}{
		{"missing from", "", "2025-01-31", ErrMissing},
		{"missing to", "2025-01-01", "", ErrMissing},
		{"bad from", "2025-13-01", "2025-01-31", ErrInvalid},
		{"bad to", "2025-01-01", "31/01/2025", ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.from, tt.to); !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOptional(t *testing.T) {
	r, err := Optional("2025-01-01", "")
	if err != nil || r != nil {
		t.Errorf("Optional(one bound) = %v, %v; want nil, nil", r, err)
	}

	if _, err := Optional("nope", "2025-01-01"); !errors.Is(err, ErrInvalid) {
		t.Errorf("Optional(bad) error = %v, want ErrInvalid", err)
	}

	r, err = Optional("2025-01-01", "2025-01-01")
	if err != nil || r == nil {
		t.Fatalf("Optional(both) = %v, %v", r, err)
	}
	if !r.Contains(time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC)) {
		t.Error("single-day range does not contain its own evening")
	}
}

func TestDay(t *testing.T) {
	at := time.Date(2025, 3, 10, 15, 4, 5, 0, time.FixedZone("IST", 5*3600+1800))
	r := Day(at)
	want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	if !r.From.Equal(want) {
		t.Errorf("Day().From = %v, want %v", r.From, want)
	}
}
