package repositories

import (
	"context"
	"strings"

	"salestrack/internal/adapters/persistence/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// likeEscaper makes LIKE wildcards in a search term literal, with '!' as the
// escape character
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

type dealerRepository struct {
	db *gorm.DB
}

// NewDealerRepository creates a new dealer repository
func NewDealerRepository(db *gorm.DB) DealerRepository {
	return &dealerRepository{db: db}
}

// Create creates a new dealer
func (r *dealerRepository) Create(ctx context.Context, dealer *models.Dealer) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(dealer).Error
}

// GetByID gets a dealer by ID
func (r *dealerRepository) GetByID(ctx context.Context, id uint) (*models.Dealer, error) {
	var dealer models.Dealer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dealer).Error
	if err != nil {
		return nil, err
	}
	return &dealer, nil
}

// List lists dealers matching the filter, ordered by name
func (r *dealerRepository) List(ctx context.Context, filter DealerFilter) ([]*models.Dealer, error) {
	q := r.db.WithContext(ctx)
	if filter.Search != "" {
		like := "%" + likeEscaper.Replace(strings.ToLower(filter.Search)) + "%"
		q = q.Where("(LOWER(name) LIKE ? ESCAPE '!' OR LOWER(city) LIKE ? ESCAPE '!')", like, like)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Approved != nil {
		q = q.Where("approved = ?", *filter.Approved)
	}

	var dealers []*models.Dealer
	err := q.Order("name ASC").Find(&dealers).Error
	return dealers, err
}

// ListWithCreator lists all dealers with the creating user, ordered by name
func (r *dealerRepository) ListWithCreator(ctx context.Context) ([]*models.Dealer, error) {
	var dealers []*models.Dealer
	err := r.db.WithContext(ctx).
		Preload("CreatedByUser").
		Order("name ASC").
		Find(&dealers).Error
	return dealers, err
}

// Approve marks a dealer approved. Returns gorm.ErrRecordNotFound when the id is unknown.
func (r *dealerRepository) Approve(ctx context.Context, id uint) (*models.Dealer, error) {
	dealer, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(dealer).Update("approved", true).Error; err != nil {
		return nil, err
	}
	dealer.Approved = true
	return dealer, nil
}
