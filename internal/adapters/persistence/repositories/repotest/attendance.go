package repotest

import (
	"context"
	"sort"

	"salestrack/internal/adapters/persistence/models"
	"salestrack/internal/adapters/persistence/repositories"
	"salestrack/internal/core/domain"
	"salestrack/internal/pkg/daterange"
)

type attendanceRepo struct{ s *Store }

func (r *attendanceRepo) Create(_ context.Context, record *models.Attendance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	record.ID = r.s.nextID()
	record.CreatedAt = r.s.Now()
	record.User = nil
	r.s.attendance[record.ID] = *record
	return nil
}

// newestFirst orders by timestamp desc, then id desc for stable ties
func (r *attendanceRepo) newestFirst(rows []*models.Attendance) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Timestamp.Equal(rows[j].Timestamp) {
			return rows[i].ID > rows[j].ID
		}
		return rows[i].Timestamp.After(rows[j].Timestamp)
	})
}

func (r *attendanceRepo) ListByUser(_ context.Context, userID uint, limit int) ([]*models.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var rows []*models.Attendance
	for _, id := range sortedKeys(r.s.attendance) {
		a := r.s.attendance[id]
		if a.UserID == userID {
			rows = append(rows, &a)
		}
	}
	r.newestFirst(rows)
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (r *attendanceRepo) List(_ context.Context, filter repositories.AttendanceFilter) ([]*models.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var rows []*models.Attendance
	for _, id := range sortedKeys(r.s.attendance) {
		a := r.s.attendance[id]
		if filter.Range != nil && !filter.Range.Contains(a.Timestamp) {
			continue
		}
		if filter.UserID != nil && a.UserID != *filter.UserID {
			continue
		}
		a.User = r.s.userRef(a.UserID)
		rows = append(rows, &a)
	}
	r.newestFirst(rows)
	return rows, nil
}

func (r *attendanceRepo) CountPresentUsers(_ context.Context, rng daterange.Range) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	present := map[uint]bool{}
	for _, a := range r.s.attendance {
		if a.Mode != nil && *a.Mode == domain.ModeIn && rng.Contains(a.Timestamp) {
			present[a.UserID] = true
		}
	}
	return int64(len(present)), nil
}
