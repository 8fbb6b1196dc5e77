package models

import (
	"time"
)

// ============================================================
// Users
// ============================================================

// User represents users table
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      string    `gorm:"size:20;not null;default:'employee';index" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// UserRef is the {id, name, email} projection joined into report rows
type UserRef struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (UserRef) TableName() string {
	return "users"
}

// UserProfile is the {id, name, email, role} projection used by the live map
type UserProfile struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (UserProfile) TableName() string {
	return "users"
}

// ============================================================
// Attendance & Location
// ============================================================

// Attendance represents attendances table (append-only)
type Attendance struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Timestamp time.Time `gorm:"column:recorded_at;not null;index" json:"timestamp"`
	Lat       *float64  `json:"lat"`
	Lng       *float64  `json:"lng"`
	DeviceID  *string   `gorm:"size:100" json:"deviceId"`
	PhotoURL  *string   `gorm:"size:500" json:"photoUrl"`
	Mode      *string   `gorm:"size:3" json:"mode"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`

	// Relations
	User *UserRef `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// LastLocation represents last_locations table (one row per user)
type LastLocation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"userId"`
	Lat       float64   `gorm:"not null" json:"lat"`
	Lng       float64   `gorm:"not null" json:"lng"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relations
	User *UserProfile `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (LastLocation) TableName() string {
	return "last_locations"
}

// ============================================================
// Dealers & Visits
// ============================================================

// Dealer represents dealers table
type Dealer struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:150;not null;index" json:"name"`
	Type          string    `gorm:"size:20;not null;index" json:"type"`
	Address       *string   `gorm:"size:255" json:"address"`
	City          *string   `gorm:"size:100;index" json:"city"`
	Phone         *string   `gorm:"size:30" json:"phone"`
	ContactName   *string   `gorm:"size:100" json:"contactName"`
	ContactMobile *string   `gorm:"size:30" json:"contactMobile"`
	Lat           *float64  `json:"lat"`
	Lng           *float64  `json:"lng"`
	CreatedBy     uint      `gorm:"not null;index" json:"createdBy"`
	Approved      bool      `gorm:"not null;default:false;index" json:"approved"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relations
	CreatedByUser *UserRef `gorm:"foreignKey:CreatedBy" json:"createdByUser,omitempty"`
}

func (Dealer) TableName() string {
	return "dealers"
}

// DealerRef is the {id, name, city, type} projection joined into visits and plans
type DealerRef struct {
	ID   uint     `gorm:"primaryKey" json:"id"`
	Name string   `json:"name"`
	City *string  `json:"city"`
	Type string   `json:"type"`
	Lat  *float64 `json:"-"`
	Lng  *float64 `json:"-"`
}

func (DealerRef) TableName() string {
	return "dealers"
}

// Visit represents visits table
type Visit struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"not null;index" json:"userId"`
	DealerID   uint       `gorm:"not null;index" json:"dealerId"`
	CheckInAt  time.Time  `gorm:"not null;index" json:"checkInAt"`
	CheckOutAt *time.Time `json:"checkOutAt"`
	Lat        *float64   `json:"lat"`
	Lng        *float64   `json:"lng"`
	Notes      *string    `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`

	// Computed
	DurationMinutes     *float64 `gorm:"-" json:"durationMinutes,omitempty"`
	DistanceFromDealerM *float64 `gorm:"-" json:"distanceFromDealerM,omitempty"`

	// Relations
	User   *UserRef   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Dealer *DealerRef `gorm:"foreignKey:DealerID" json:"dealer,omitempty"`
}

func (Visit) TableName() string {
	return "visits"
}

// IsOpen reports whether the visit has not been checked out yet
func (v *Visit) IsOpen() bool {
	return v.CheckOutAt == nil
}

// ============================================================
// Route plans (PJP)
// ============================================================

// RoutePlan represents route_plans table, unique per (user, day)
type RoutePlan struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_route_plans_user_date" json:"userId"`
	Date      time.Time `gorm:"not null;uniqueIndex:idx_route_plans_user_date" json:"date"`
	Notes     *string   `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relations
	User  *UserRef        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items []RoutePlanItem `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE" json:"items"`
}

func (RoutePlan) TableName() string {
	return "route_plans"
}

// RoutePlanItem represents route_plan_items table
type RoutePlanItem struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	PlanID      uint       `gorm:"not null;index" json:"planId"`
	DealerID    uint       `gorm:"not null;index" json:"dealerId"`
	Sequence    int        `gorm:"not null" json:"sequence"`
	PlannedTime *time.Time `json:"plannedTime"`

	// Relations
	Dealer *DealerRef `gorm:"foreignKey:DealerID" json:"dealer,omitempty"`
}

func (RoutePlanItem) TableName() string {
	return "route_plan_items"
}

// ============================================================
// Claims (TA/DA)
// ============================================================

// Claim represents claims table
type Claim struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;index" json:"userId"`
	Date        time.Time  `gorm:"not null;index" json:"date"`
	Amount      float64    `gorm:"type:decimal(12,2);not null" json:"amount"`
	Type        string     `gorm:"size:50;not null" json:"type"`
	Description *string    `gorm:"type:text" json:"description"`
	DistanceKm  *float64   `json:"distanceKm"`
	Status      string     `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	ApprovedBy  *uint      `json:"approvedBy"`
	ApprovedAt  *time.Time `json:"approvedAt"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`

	// Relations
	User           *UserRef `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ApprovedByUser *UserRef `gorm:"foreignKey:ApprovedBy" json:"approvedByUser,omitempty"`
}

func (Claim) TableName() string {
	return "claims"
}
