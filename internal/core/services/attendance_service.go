package services

import (
	"context"
	"strings"
	"time"

	"salestrack/internal/adapters/persistence/models"
	"salestrack/internal/adapters/persistence/repositories"
	"salestrack/internal/core/domain"
	"salestrack/internal/pkg/flex"
)

// MineLimit caps the caller's own attendance history
const MineLimit = 50

// AttendanceService records attendance punches
type AttendanceService struct {
	repo repositories.AttendanceRepository
	now  func() time.Time
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(repo repositories.AttendanceRepository) *AttendanceService {
	return &AttendanceService{repo: repo, now: time.Now}
}

// MarkAttendanceInput represents a punch submitted by the field client
type MarkAttendanceInput struct {
	Timestamp string     `json:"timestamp"`
	Lat       flex.Float `json:"lat" swaggertype:"number"`
	Lng       flex.Float `json:"lng" swaggertype:"number"`
	DeviceID  string     `json:"deviceId"`
	PhotoURL  string     `json:"photoUrl"`
	Mode      string     `json:"mode"`
}

// Mark appends an attendance record. Unknown modes are stored as null.
func (s *AttendanceService) Mark(ctx context.Context, userID uint, input *MarkAttendanceInput) (*models.Attendance, error) {
	ts := s.now().UTC()
	if raw := strings.TrimSpace(input.Timestamp); raw != "" {
		parsed, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, domain.Validation("Invalid timestamp, expected RFC3339")
		}
		ts = parsed.UTC()
	}

	record := &models.Attendance{
		UserID:    userID,
		Timestamp: ts,
		Lat:       input.Lat.Ptr(),
		Lng:       input.Lng.Ptr(),
		DeviceID:  nonEmpty(input.DeviceID),
		PhotoURL:  nonEmpty(input.PhotoURL),
		Mode:      domain.NormalizeAttendanceMode(input.Mode),
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// ListMine returns the caller's newest records
func (s *AttendanceService) ListMine(ctx context.Context, userID uint) ([]*models.Attendance, error) {
	return s.repo.ListByUser(ctx, userID, MineLimit)
}

func nonEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
