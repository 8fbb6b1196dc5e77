package repositories

import (
	"context"

	"salestrack/internal/adapters/persistence/models"
	"salestrack/internal/pkg/daterange"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type claimRepository struct {
	db *gorm.DB
}

// NewClaimRepository creates a new claim repository
func NewClaimRepository(db *gorm.DB) ClaimRepository {
	return &claimRepository{db: db}
}

// Create creates a new claim
func (r *claimRepository) Create(ctx context.Context, claim *models.Claim) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(claim).Error
}

// GetByID gets a claim by ID
func (r *claimRepository) GetByID(ctx context.Context, id uint) (*models.Claim, error) {
	var claim models.Claim
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&claim).Error
	if err != nil {
		return nil, err
	}
	return &claim, nil
}

// List lists claims newest date first
func (r *claimRepository) List(ctx context.Context, filter ClaimFilter) ([]*models.Claim, error) {
	q := r.db.WithContext(ctx)
	if filter.WithUsers {
		q = q.Preload("User").Preload("ApprovedByUser")
	}
	if filter.Range != nil {
		q = q.Where("date BETWEEN ? AND ?", filter.Range.From, filter.Range.To)
	}
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var claims []*models.Claim
	err := q.Order("date DESC").Order("id DESC").Find(&claims).Error
	return claims, err
}

// UpdateStatus writes status and the approval stamp. Returns gorm.ErrRecordNotFound when the id is unknown.
func (r *claimRepository) UpdateStatus(ctx context.Context, in ClaimStatusUpdate) (*models.Claim, error) {
	claim, err := r.GetByID(ctx, in.ClaimID)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Model(claim).Updates(map[string]interface{}{
		"status":      in.Status,
		"approved_by": in.ApprovedBy,
		"approved_at": in.ApprovedAt,
	}).Error
	if err != nil {
		return nil, err
	}

	claim.Status = in.Status
	claim.ApprovedBy = in.ApprovedBy
	claim.ApprovedAt = in.ApprovedAt
	return claim, nil
}

// CountInRange counts claims dated inside the range
func (r *claimRepository) CountInRange(ctx context.Context, rng daterange.Range) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Claim{}).
		Where("date BETWEEN ? AND ?", rng.From, rng.To).
		Count(&count).Error
	return count, err
}
