package repositories

import (
	"context"

	"salestrack/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new last-location repository
func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

// Upsert writes the single position row of a user
func (r *locationRepository) Upsert(ctx context.Context, userID uint, lat, lng float64) (*models.LastLocation, error) {
	db := r.db.WithContext(ctx)

	row := models.LastLocation{UserID: userID, Lat: lat, Lng: lng}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"lat", "lng", "updated_at"}),
	}).Omit(clause.Associations).Create(&row).Error
	if err != nil {
		return nil, err
	}

	// MySQL does not report the id of an updated row, so read it back.
	var saved models.LastLocation
	if err := db.Where("user_id = ?", userID).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

// ListAll returns every last-known position with its user, most recent first
func (r *locationRepository) ListAll(ctx context.Context) ([]*models.LastLocation, error) {
	var rows []*models.LastLocation
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("updated_at DESC").
		Find(&rows).Error
	return rows, err
}
