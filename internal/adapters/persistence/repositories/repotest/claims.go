package repotest

import (
	"context"
	"sort"

	"salestrack/internal/adapters/persistence/models"
	"salestrack/internal/adapters/persistence/repositories"
	"salestrack/internal/pkg/daterange"

	"gorm.io/gorm"
)

type claimRepo struct{ s *Store }

func (r *claimRepo) Create(_ context.Context, claim *models.Claim) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	claim.ID = r.s.nextID()
	claim.CreatedAt = r.s.Now()
	claim.UpdatedAt = claim.CreatedAt
	if claim.Status == "" {
		claim.Status = "PENDING"
	}
	claim.User, claim.ApprovedByUser = nil, nil
	r.s.claims[claim.ID] = *claim
	return nil
}

func (r *claimRepo) GetByID(_ context.Context, id uint) (*models.Claim, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.claims[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r *claimRepo) List(_ context.Context, filter repositories.ClaimFilter) ([]*models.Claim, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var rows []*models.Claim
	for _, id := range sortedKeys(r.s.claims) {
		c := r.s.claims[id]
		if filter.Range != nil && !filter.Range.Contains(c.Date) {
			continue
		}
		if filter.UserID != nil && c.UserID != *filter.UserID {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.WithUsers {
			c.User = r.s.userRef(c.UserID)
			if c.ApprovedBy != nil {
				c.ApprovedByUser = r.s.userRef(*c.ApprovedBy)
			}
		}
		rows = append(rows, &c)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Date.Equal(rows[j].Date) {
			return rows[i].ID > rows[j].ID
		}
		return rows[i].Date.After(rows[j].Date)
	})
	return rows, nil
}

func (r *claimRepo) UpdateStatus(_ context.Context, in repositories.ClaimStatusUpdate) (*models.Claim, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.claims[in.ClaimID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c.Status = in.Status
	c.ApprovedBy = in.ApprovedBy
	c.ApprovedAt = in.ApprovedAt
	c.UpdatedAt = r.s.Now()
	r.s.claims[c.ID] = c
	return &c, nil
}

func (r *claimRepo) CountInRange(_ context.Context, rng daterange.Range) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for _, c := range r.s.claims {
		if rng.Contains(c.Date) {
			n++
		}
	}
	return n, nil
}
