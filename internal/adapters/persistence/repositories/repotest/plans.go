package repotest

import (
	"context"
	"sort"
	"time"

	"salestrack/internal/adapters/persistence/models"
	"salestrack/internal/pkg/daterange"

	"gorm.io/gorm"
)

type planRepo struct{ s *Store }

func (r *planRepo) find(userID uint, date time.Time) (models.RoutePlan, bool) {
	for _, p := range r.s.plans {
		if p.UserID == userID && p.Date.Equal(date) {
			return p, true
		}
	}
	return models.RoutePlan{}, false
}

// hydrate copies the item slice and joins dealers, ordered by sequence
func (r *planRepo) hydrate(p models.RoutePlan, withUser bool) *models.RoutePlan {
	items := make([]models.RoutePlanItem, len(p.Items))
	copy(items, p.Items)
	for i := range items {
		items[i].Dealer = r.s.dealerRef(items[i].DealerID)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Sequence < items[j].Sequence })
	p.Items = items
	if withUser {
		p.User = r.s.userRef(p.UserID)
	}
	return &p
}

func (r *planRepo) Replace(_ context.Context, plan *models.RoutePlan) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, it := range plan.Items {
		if _, ok := r.s.dealers[it.DealerID]; !ok {
			return gorm.ErrForeignKeyViolated
		}
	}

	now := r.s.Now()
	stored, ok := r.find(plan.UserID, plan.Date)
	if !ok {
		stored = models.RoutePlan{ID: r.s.nextID(), UserID: plan.UserID, Date: plan.Date, CreatedAt: now}
	}
	stored.Notes = plan.Notes
	stored.UpdatedAt = now
	stored.Items = make([]models.RoutePlanItem, len(plan.Items))
	for i, it := range plan.Items {
		it.ID = r.s.nextID()
		it.PlanID = stored.ID
		it.Dealer = nil
		stored.Items[i] = it
	}
	r.s.plans[stored.ID] = stored

	*plan = *r.hydrate(stored, false)
	return nil
}

func (r *planRepo) GetByUserAndDate(_ context.Context, userID uint, date time.Time) (*models.RoutePlan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.find(userID, date)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.hydrate(p, false), nil
}

func (r *planRepo) ListByUser(_ context.Context, userID uint, rng daterange.Range, withUser bool) ([]*models.RoutePlan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var rows []*models.RoutePlan
	for _, id := range sortedKeys(r.s.plans) {
		p := r.s.plans[id]
		if p.UserID == userID && rng.Contains(p.Date) {
			rows = append(rows, r.hydrate(p, withUser))
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows, nil
}

func (r *planRepo) CountInRange(_ context.Context, rng daterange.Range) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for _, p := range r.s.plans {
		if rng.Contains(p.Date) {
			n++
		}
	}
	return n, nil
}
