package repotest

import (
	"context"
	"sort"

	"salestrack/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

type userRepo struct{ s *Store }

func (r *userRepo) Create(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = r.s.nextID()
	user.CreatedAt = r.s.Now()
	user.UpdatedAt = user.CreatedAt
	if user.Role == "" {
		user.Role = "employee"
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *userRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return err == nil, nil
}

func (r *userRepo) ListRefs(_ context.Context) ([]*models.UserRef, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	refs := make([]*models.UserRef, 0, len(r.s.users))
	for _, id := range sortedKeys(r.s.users) {
		refs = append(refs, r.s.userRef(id))
	}
	sort.SliceStable(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func (r *userRepo) CountByRole(_ context.Context, role string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var n int64
	for _, u := range r.s.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}
