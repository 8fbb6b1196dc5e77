package repotest

import (
	"context"
	"sort"
	"strings"

	"salestrack/internal/adapters/persistence/models"
	"salestrack/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

type dealerRepo struct{ s *Store }

func (r *dealerRepo) Create(_ context.Context, dealer *models.Dealer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	dealer.ID = r.s.nextID()
	dealer.CreatedAt = r.s.Now()
	dealer.UpdatedAt = dealer.CreatedAt
	dealer.CreatedByUser = nil
	r.s.dealers[dealer.ID] = *dealer
	return nil
}

func (r *dealerRepo) GetByID(_ context.Context, id uint) (*models.Dealer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.dealers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &d, nil
}

func (r *dealerRepo) List(_ context.Context, filter repositories.DealerFilter) ([]*models.Dealer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	search := strings.ToLower(filter.Search)
	var rows []*models.Dealer
	for _, id := range sortedKeys(r.s.dealers) {
		d := r.s.dealers[id]
		if search != "" {
			city := ""
			if d.City != nil {
				city = *d.City
			}
			if !strings.Contains(strings.ToLower(d.Name), search) && !strings.Contains(strings.ToLower(city), search) {
				continue
			}
		}
		if filter.Type != "" && d.Type != filter.Type {
			continue
		}
		if filter.Approved != nil && d.Approved != *filter.Approved {
			continue
		}
		rows = append(rows, &d)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows, nil
}

func (r *dealerRepo) ListWithCreator(_ context.Context) ([]*models.Dealer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var rows []*models.Dealer
	for _, id := range sortedKeys(r.s.dealers) {
		d := r.s.dealers[id]
		d.CreatedByUser = r.s.userRef(d.CreatedBy)
		rows = append(rows, &d)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows, nil
}

func (r *dealerRepo) Approve(_ context.Context, id uint) (*models.Dealer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.dealers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	d.Approved = true
	d.UpdatedAt = r.s.Now()
	r.s.dealers[id] = d
	return &d, nil
}
