package repositories

import (
	"context"
	"time"

	"salestrack/internal/adapters/persistence/models"
	"salestrack/internal/pkg/daterange"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListRefs(ctx context.Context) ([]*models.UserRef, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}

// AttendanceFilter narrows attendance listings
type AttendanceFilter struct {
	Range  *daterange.Range
	UserID *uint
}

// AttendanceRepository defines attendance repository interface
type AttendanceRepository interface {
	Create(ctx context.Context, record *models.Attendance) error
	ListByUser(ctx context.Context, userID uint, limit int) ([]*models.Attendance, error)
	List(ctx context.Context, filter AttendanceFilter) ([]*models.Attendance, error)
	CountPresentUsers(ctx context.Context, r daterange.Range) (int64, error)
}

// LocationRepository defines last-location repository interface
type LocationRepository interface {
	Upsert(ctx context.Context, userID uint, lat, lng float64) (*models.LastLocation, error)
	ListAll(ctx context.Context) ([]*models.LastLocation, error)
}

// DealerFilter narrows dealer listings
type DealerFilter struct {
	Search   string
	Type     string
	Approved *bool
}

// DealerRepository defines dealer repository interface
type DealerRepository interface {
	Create(ctx context.Context, dealer *models.Dealer) error
	GetByID(ctx context.Context, id uint) (*models.Dealer, error)
	List(ctx context.Context, filter DealerFilter) ([]*models.Dealer, error)
	ListWithCreator(ctx context.Context) ([]*models.Dealer, error)
	Approve(ctx context.Context, id uint) (*models.Dealer, error)
}

// VisitFilter narrows visit listings
type VisitFilter struct {
	Range    *daterange.Range
	UserID   *uint
	DealerID *uint
}

// VisitCheckOut carries the fields written when a visit ends
type VisitCheckOut struct {
	VisitID uint
	UserID  uint
	At      time.Time
	Lat     *float64
	Lng     *float64
}

// VisitRepository defines visit repository interface
type VisitRepository interface {
	Create(ctx context.Context, visit *models.Visit) error
	GetByID(ctx context.Context, id uint) (*models.Visit, error)
	// CheckOut closes an open visit owned by the user in one conditional
	// update. It reports false when no row matched.
	CheckOut(ctx context.Context, in VisitCheckOut) (bool, error)
	List(ctx context.Context, filter VisitFilter) ([]*models.Visit, error)
	CountCheckIns(ctx context.Context, r daterange.Range) (int64, error)
}

// PlanRepository defines route plan (PJP) repository interface
type PlanRepository interface {
	// Replace upserts the plan for (UserID, Date) and swaps its whole item set
	Replace(ctx context.Context, plan *models.RoutePlan) error
	GetByUserAndDate(ctx context.Context, userID uint, date time.Time) (*models.RoutePlan, error)
	ListByUser(ctx context.Context, userID uint, r daterange.Range, withUser bool) ([]*models.RoutePlan, error)
	CountInRange(ctx context.Context, r daterange.Range) (int64, error)
}

// ClaimFilter narrows claim listings
type ClaimFilter struct {
	Range     *daterange.Range
	UserID    *uint
	Status    string
	WithUsers bool
}

// ClaimStatusUpdate carries a status change and its approval stamp
type ClaimStatusUpdate struct {
	ClaimID    uint
	Status     string
	ApprovedBy *uint
	ApprovedAt *time.Time
}

// ClaimRepository defines claim repository interface
type ClaimRepository interface {
	Create(ctx context.Context, claim *models.Claim) error
	GetByID(ctx context.Context, id uint) (*models.Claim, error)
	List(ctx context.Context, filter ClaimFilter) ([]*models.Claim, error)
	UpdateStatus(ctx context.Context, in ClaimStatusUpdate) (*models.Claim, error)
	CountInRange(ctx context.Context, r daterange.Range) (int64, error)
}

// Set bundles every repository the services need
type Set struct {
	Users      UserRepository
	Attendance AttendanceRepository
	Locations  LocationRepository
	Dealers    DealerRepository
	Visits     VisitRepository
	Plans      PlanRepository
	Claims     ClaimRepository
}
