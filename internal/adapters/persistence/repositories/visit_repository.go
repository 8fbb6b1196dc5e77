package repositories

import (
	"context"

	"salestrack/internal/adapters/persistence/models"
	"salestrack/internal/pkg/daterange"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository creates a new visit repository
func NewVisitRepository(db *gorm.DB) VisitRepository {
	return &visitRepository{db: db}
}

// Create opens a visit and loads its dealer
func (r *visitRepository) Create(ctx context.Context, visit *models.Visit) error {
	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(visit).Error; err != nil {
		return err
	}

	var dealer models.DealerRef
	if err := db.Where("id = ?", visit.DealerID).First(&dealer).Error; err != nil {
		return err
	}
	visit.Dealer = &dealer
	return nil
}

// GetByID gets a visit with its dealer
func (r *visitRepository) GetByID(ctx context.Context, id uint) (*models.Visit, error) {
	var visit models.Visit
	err := r.db.WithContext(ctx).Preload("Dealer").Where("id = ?", id).First(&visit).Error
	if err != nil {
		return nil, err
	}
	return &visit, nil
}

// CheckOut stamps check_out_at only while it is still NULL, so concurrent
// check-outs of the same visit cannot both succeed.
func (r *visitRepository) CheckOut(ctx context.Context, in VisitCheckOut) (bool, error) {
	updates := map[string]interface{}{"check_out_at": in.At}
	if in.Lat != nil {
		updates["lat"] = *in.Lat
	}
	if in.Lng != nil {
		updates["lng"] = *in.Lng
	}

	res := r.db.WithContext(ctx).
		Model(&models.Visit{}).
		Where("id = ? AND user_id = ? AND check_out_at IS NULL", in.VisitID, in.UserID).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// List lists visits with user and dealer, newest check-in first
func (r *visitRepository) List(ctx context.Context, filter VisitFilter) ([]*models.Visit, error) {
	q := r.db.WithContext(ctx).Preload("User").Preload("Dealer")
	if filter.Range != nil {
		q = q.Where("check_in_at BETWEEN ? AND ?", filter.Range.From, filter.Range.To)
	}
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.DealerID != nil {
		q = q.Where("dealer_id = ?", *filter.DealerID)
	}

	var visits []*models.Visit
	err := q.Order("check_in_at DESC").Find(&visits).Error
	return visits, err
}

// CountCheckIns counts visits started inside the range
func (r *visitRepository) CountCheckIns(ctx context.Context, rng daterange.Range) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Visit{}).
		Where("check_in_at BETWEEN ? AND ?", rng.From, rng.To).
		Count(&count).Error
	return count, err
}
