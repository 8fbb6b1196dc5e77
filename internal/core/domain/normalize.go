package domain

import "strings"

// Attendance modes
const (
	ModeIn  = "IN"
	ModeOut = "OUT"
)

// NormalizeAttendanceMode upper-cases mode and keeps it only when it is IN or
// OUT. Anything else, including an empty string, maps to nil.
func NormalizeAttendanceMode(mode string) *string {
	upper := strings.ToUpper(strings.TrimSpace(mode))
	if upper != ModeIn && upper != ModeOut {
		return nil
	}
	return &upper
}

// Dealer types
const (
	DealerTypeDealer    = "dealer"
	DealerTypeSubDealer = "sub-dealer"
)

var dealerTypes = map[string]string{
	"dealer":     DealerTypeDealer,
	"sub-dealer": DealerTypeSubDealer,
	"subdealer":  DealerTypeSubDealer,
}

// NormalizeDealerType maps a case-insensitive dealer type onto its canonical
// form. ok is false for unrecognized input.
func NormalizeDealerType(t string) (normalized string, ok bool) {
	normalized, ok = dealerTypes[strings.ToLower(strings.TrimSpace(t))]
	return normalized, ok
}

// Claim statuses
const (
	ClaimPending  = "PENDING"
	ClaimApproved = "APPROVED"
	ClaimRejected = "REJECTED"
)

// IsClaimStatus reports whether s is one of the exact claim statuses
func IsClaimStatus(s string) bool {
	switch s {
	case ClaimPending, ClaimApproved, ClaimRejected:
		return true
	}
	return false
}

// ParseClaimStatusFilter upper-cases a status query value. ok is false when
// the value is not a known status and the filter must be ignored.
func ParseClaimStatusFilter(s string) (status string, ok bool) {
	status = strings.ToUpper(strings.TrimSpace(s))
	return status, IsClaimStatus(status)
}

// User roles
const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// IsRole reports whether r is a known user role
func IsRole(r string) bool {
	return r == RoleEmployee || r == RoleAdmin
}

// DefaultClaimType is stored when a claim is submitted without a type
const DefaultClaimType = "Travel"
