package services

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"salestrack/internal/adapters/persistence/models"
	"salestrack/internal/adapters/persistence/repositories"
	"salestrack/internal/adapters/persistence/repositories/repotest"
	"salestrack/internal/core/domain"
)

func newRepos(t *testing.T) repositories.Set {
	t.Helper()
	repos, _ := repotest.NewSet()
	return repos
}

func createUser(t *testing.T, repos repositories.Set, name, email, role string) *models.User {
	t.Helper()
	u := &models.User{Name: name, Email: email, Password: "x", Role: role}
	if err := repos.Users.Create(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func createDealer(t *testing.T, repos repositories.Set, name, city string, createdBy uint) *models.Dealer {
	t.Helper()
	d := &models.Dealer{Name: name, Type: domain.DealerTypeDealer, City: &city, CreatedBy: createdBy}
	if err := repos.Dealers.Create(context.Background(), d); err != nil {
		t.Fatalf("create dealer: %v", err)
	}
	return d
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func assertKind(t *testing.T, err, kind error) {
	t.Helper()
	if !errors.Is(err, kind) {
		t.Fatalf("error = %v, want kind %v", err, kind)
	}
}

func ptr[T any](v T) *T {
	return &v
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
