package repotest

import (
	"context"
	"sort"

	"salestrack/internal/adapters/persistence/models"
)

type locationRepo struct{ s *Store }

func (r *locationRepo) Upsert(_ context.Context, userID uint, lat, lng float64) (*models.LastLocation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.Now()
	row, ok := r.s.locations[userID]
	if !ok {
		row = models.LastLocation{ID: r.s.nextID(), UserID: userID, CreatedAt: now}
	}
	row.Lat, row.Lng, row.UpdatedAt = lat, lng, now
	r.s.locations[userID] = row
	return &row, nil
}

func (r *locationRepo) ListAll(_ context.Context) ([]*models.LastLocation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rows := make([]*models.LastLocation, 0, len(r.s.locations))
	for _, uid := range sortedKeys(r.s.locations) {
		row := r.s.locations[uid]
		if u, ok := r.s.users[uid]; ok {
			row.User = &models.UserProfile{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
		}
		rows = append(rows, &row)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].UpdatedAt.After(rows[j].UpdatedAt) })
	return rows, nil
}
