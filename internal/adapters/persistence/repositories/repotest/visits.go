package repotest

import (
	"context"
	"sort"

	"salestrack/internal/adapters/persistence/models"
	"salestrack/internal/adapters/persistence/repositories"
	"salestrack/internal/pkg/daterange"

	"gorm.io/gorm"
)

type visitRepo struct{ s *Store }

func (r *visitRepo) Create(_ context.Context, visit *models.Visit) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.dealers[visit.DealerID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	visit.ID = r.s.nextID()
	visit.CreatedAt = r.s.Now()
	visit.UpdatedAt = visit.CreatedAt
	visit.User, visit.Dealer = nil, nil
	r.s.visits[visit.ID] = *visit
	visit.Dealer = r.s.dealerRef(visit.DealerID)
	return nil
}

func (r *visitRepo) GetByID(_ context.Context, id uint) (*models.Visit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	v, ok := r.s.visits[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	v.Dealer = r.s.dealerRef(v.DealerID)
	return &v, nil
}

func (r *visitRepo) CheckOut(_ context.Context, in repositories.VisitCheckOut) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	v, ok := r.s.visits[in.VisitID]
	if !ok || v.UserID != in.UserID || v.CheckOutAt != nil {
		return false, nil
	}
	at := in.At
	v.CheckOutAt = &at
	if in.Lat != nil {
		lat := *in.Lat
		v.Lat = &lat
	}
	if in.Lng != nil {
		lng := *in.Lng
		v.Lng = &lng
	}
	v.UpdatedAt = r.s.Now()
	r.s.visits[v.ID] = v
	return true, nil
}

func (r *visitRepo) List(_ context.Context, filter repositories.VisitFilter) ([]*models.Visit, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var rows []*models.Visit
	for _, id := range sortedKeys(r.s.visits) {
		v := r.s.visits[id]
		if filter.Range != nil && !filter.Range.Contains(v.CheckInAt) {
			continue
		}
		if filter.UserID != nil && v.UserID != *filter.UserID {
			continue
		}
		if filter.DealerID != nil && v.DealerID != *filter.DealerID {
			continue
		}
		v.User = r.s.userRef(v.UserID)
		v.Dealer = r.s.dealerRef(v.DealerID)
		rows = append(rows, &v)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].CheckInAt.Equal(rows[j].CheckInAt) {
			return rows[i].ID > rows[j].ID
		}
		return rows[i].CheckInAt.After(rows[j].CheckInAt)
	})
	return rows, nil
}

func (r *visitRepo) CountCheckIns(_ context.Context, rng daterange.Range) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for _, v := range r.s.visits {
		if rng.Contains(v.CheckInAt) {
			n++
		}
	}
	return n, nil
}
