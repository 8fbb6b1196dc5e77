// Package repotest provides in-memory repositories for service and handler tests.
package repotest

import (
	"sort"
	"sync"
	"time"

	"salestrack/internal/adapters/persistence/models"
	"salestrack/internal/adapters/persistence/repositories"
)

// Store holds every table in memory. Rows are copied in and out so callers
// never share pointers with the store, as with a real database.
type Store struct {
	mu         sync.Mutex
	seq        uint
	users      map[uint]models.User
	attendance map[uint]models.Attendance
	locations  map[uint]models.LastLocation
	dealers    map[uint]models.Dealer
	visits     map[uint]models.Visit
	plans      map[uint]models.RoutePlan
	claims     map[uint]models.Claim

	// Now stamps CreatedAt/UpdatedAt. Defaults to time.Now in UTC.
	Now func() time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		users:      map[uint]models.User{},
		attendance: map[uint]models.Attendance{},
		locations:  map[uint]models.LastLocation{},
		dealers:    map[uint]models.Dealer{},
		visits:     map[uint]models.Visit{},
		plans:      map[uint]models.RoutePlan{},
		claims:     map[uint]models.Claim{},
		Now:        func() time.Time { return time.Now().UTC() },
	}
}

// NewSet returns a repository set over a fresh store
func NewSet() (repositories.Set, *Store) {
	s := NewStore()
	return s.Set(), s
}

// Set exposes the store through the repository interfaces
func (s *Store) Set() repositories.Set {
	return repositories.Set{
		Users:      &userRepo{s},
		Attendance: &attendanceRepo{s},
		Locations:  &locationRepo{s},
		Dealers:    &dealerRepo{s},
		Visits:     &visitRepo{s},
		Plans:      &planRepo{s},
		Claims:     &claimRepo{s},
	}
}

func (s *Store) nextID() uint {
	s.seq++
	return s.seq
}

func (s *Store) userRef(id uint) *models.UserRef {
	u, ok := s.users[id]
	if !ok {
		return nil
	}
	return &models.UserRef{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (s *Store) dealerRef(id uint) *models.DealerRef {
	d, ok := s.dealers[id]
	if !ok {
		return nil
	}
	return &models.DealerRef{ID: d.ID, Name: d.Name, City: d.City, Type: d.Type, Lat: d.Lat, Lng: d.Lng}
}

func sortedKeys[V any](m map[uint]V) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
