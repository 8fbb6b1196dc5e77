package repositories

import (
	"context"
	"errors"
	"time"

	"salestrack/internal/adapters/persistence/models"
	"salestrack/internal/pkg/daterange"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new route plan repository
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("sequence ASC")
}

// Replace saves the plan header and its items in one transaction. Existing
// items of the (user, date) plan are removed before the new set is inserted.
func (r *planRepository) Replace(ctx context.Context, plan *models.RoutePlan) error {
	items := plan.Items

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.RoutePlan
		err := tx.Where("user_id = ? AND date = ?", plan.UserID, plan.Date).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			plan.ID = 0
			if err := tx.Omit(clause.Associations).Create(plan).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			plan.ID = existing.ID
			if err := tx.Model(&existing).Update("notes", plan.Notes).Error; err != nil {
				return err
			}
			if err := tx.Where("plan_id = ?", plan.ID).Delete(&models.RoutePlanItem{}).Error; err != nil {
				return err
			}
		}

		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].ID = 0
			items[i].PlanID = plan.ID
			items[i].Dealer = nil
		}
		return tx.Omit(clause.Associations).Create(&items).Error
	})
	if err != nil {
		return err
	}

	saved, err := r.GetByUserAndDate(ctx, plan.UserID, plan.Date)
	if err != nil {
		return err
	}
	*plan = *saved
	return nil
}

// GetByUserAndDate gets one plan with items (by sequence) and their dealers
func (r *planRepository) GetByUserAndDate(ctx context.Context, userID uint, date time.Time) (*models.RoutePlan, error) {
	var plan models.RoutePlan
	err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		Preload("Items.Dealer").
		Where("user_id = ? AND date = ?", userID, date).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// ListByUser lists a user's plans dated inside the range, oldest first
func (r *planRepository) ListByUser(ctx context.Context, userID uint, rng daterange.Range, withUser bool) ([]*models.RoutePlan, error) {
	q := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		Preload("Items.Dealer")
	if withUser {
		q = q.Preload("User")
	}

	var plans []*models.RoutePlan
	err := q.Where("user_id = ? AND date BETWEEN ? AND ?", userID, rng.From, rng.To).
		Order("date ASC").
		Find(&plans).Error
	return plans, err
}

// CountInRange counts plans dated inside the range
func (r *planRepository) CountInRange(ctx context.Context, rng daterange.Range) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.RoutePlan{}).
		Where("date BETWEEN ? AND ?", rng.From, rng.To).
		Count(&count).Error
	return count, err
}
