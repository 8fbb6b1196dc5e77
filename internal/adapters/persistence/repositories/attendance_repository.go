package repositories

import (
	"context"

	"salestrack/internal/adapters/persistence/models"
	"salestrack/internal/core/domain"
	"salestrack/internal/pkg/daterange"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create appends an attendance record
func (r *attendanceRepository) Create(ctx context.Context, record *models.Attendance) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(record).Error
}

// ListByUser returns the newest records of one user
func (r *attendanceRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]*models.Attendance, error) {
	var records []*models.Attendance
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

// List returns records with their user, newest first
func (r *attendanceRepository) List(ctx context.Context, filter AttendanceFilter) ([]*models.Attendance, error) {
	q := r.db.WithContext(ctx).Preload("User")
	if filter.Range != nil {
		q = q.Where("recorded_at BETWEEN ? AND ?", filter.Range.From, filter.Range.To)
	}
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}

	var records []*models.Attendance
	err := q.Order("recorded_at DESC").Find(&records).Error
	return records, err
}

// CountPresentUsers counts distinct users with an IN punch inside the range
func (r *attendanceRepository) CountPresentUsers(ctx context.Context, rng daterange.Range) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Attendance{}).
		Where("mode = ? AND recorded_at BETWEEN ? AND ?", domain.ModeIn, rng.From, rng.To).
		Distinct("user_id").
		Count(&count).Error
	return count, err
}
