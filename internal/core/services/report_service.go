package services

import (
	"context"
	"time"

	"salestrack/internal/adapters/persistence/models"
	"salestrack/internal/adapters/persistence/repositories"
	"salestrack/internal/pkg/daterange"
	"salestrack/internal/pkg/xlsx"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// ReportService serves the admin console projections
type ReportService struct {
	repos repositories.Set
	now   func() time.Time
}

// NewReportService creates a new report service
func NewReportService(repos repositories.Set) *ReportService {
	return &ReportService{repos: repos, now: time.Now}
}

// AttendanceReportQuery filters the attendance report
type AttendanceReportQuery struct {
	From   string
	To     string
	UserID string
}

// VisitsReportQuery filters the visits report
type VisitsReportQuery struct {
	From     string
	To       string
	UserID   string
	DealerID string
}

// Attendance lists punches in [from, to] with the user joined
func (s *ReportService) Attendance(ctx context.Context, q AttendanceReportQuery) ([]*models.Attendance, error) {
	rng, err := daterange.Parse(q.From, q.To)
	if err != nil {
		return nil, rangeError(err)
	}
	filter := repositories.AttendanceFilter{Range: &rng}
	if id, ok := parseID(q.UserID); ok {
		filter.UserID = &id
	}
	return s.repos.Attendance.List(ctx, filter)
}

// Users lists every user as {id, name, email}
func (s *ReportService) Users(ctx context.Context) ([]*models.UserRef, error) {
	return s.repos.Users.ListRefs(ctx)
}

// Visits lists visits checked in within [from, to] with user and dealer joined
func (s *ReportService) Visits(ctx context.Context, q VisitsReportQuery) ([]*models.Visit, error) {
	rng, err := daterange.Parse(q.From, q.To)
	if err != nil {
		return nil, rangeError(err)
	}
	filter := repositories.VisitFilter{Range: &rng}
	if id, ok := parseID(q.UserID); ok {
		filter.UserID = &id
	}
	if id, ok := parseID(q.DealerID); ok {
		filter.DealerID = &id
	}

	visits, err := s.repos.Visits.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for _, v := range visits {
		withDuration(v)
		v.DistanceFromDealerM = distanceFromDealer(v)
	}
	return visits, nil
}

// Dealers lists all dealers with their creator
func (s *ReportService) Dealers(ctx context.Context) ([]*models.Dealer, error) {
	return s.repos.Dealers.ListWithCreator(ctx)
}

// distanceFromDealer is the great-circle distance in metres between where the
// visit was logged and the dealer's stored position
func distanceFromDealer(v *models.Visit) *float64 {
	if v.Lat == nil || v.Lng == nil || v.Dealer == nil || v.Dealer.Lat == nil || v.Dealer.Lng == nil {
		return nil
	}
	d := geo.DistanceHaversine(
		orb.Point{*v.Lng, *v.Lat},
		orb.Point{*v.Dealer.Lng, *v.Dealer.Lat},
	)
	return &d
}

// ============================================================
// Excel export
// ============================================================

// ExportAttendance renders the attendance report as a workbook
func (s *ReportService) ExportAttendance(ctx context.Context, q AttendanceReportQuery) ([]byte, error) {
	rows, err := s.Attendance(ctx, q)
	if err != nil {
		return nil, err
	}

	sheet := xlsx.Sheet{
		Name:  "Attendance",
		Title: "Attendance " + q.From + " to " + q.To,
		Columns: []xlsx.Column{
			{Header: "ID", Width: 8}, {Header: "Employee"}, {Header: "Email", Width: 26},
			{Header: "Timestamp (UTC)", Width: 20}, {Header: "Mode", Width: 8},
			{Header: "Lat"}, {Header: "Lng"}, {Header: "Device"}, {Header: "Photo", Width: 40},
		},
	}
	for _, a := range rows {
		name, email := userCells(a.User)
		sheet.Rows = append(sheet.Rows, []interface{}{
			a.ID, name, email, a.Timestamp, a.Mode, a.Lat, a.Lng, a.DeviceID, a.PhotoURL,
		})
	}
	return xlsx.Build(s.now(), sheet)
}

// ExportVisits renders the visits report as a workbook
func (s *ReportService) ExportVisits(ctx context.Context, q VisitsReportQuery) ([]byte, error) {
	visits, err := s.Visits(ctx, q)
	if err != nil {
		return nil, err
	}

	sheet := xlsx.Sheet{
		Name:  "Visits",
		Title: "Visits " + q.From + " to " + q.To,
		Columns: []xlsx.Column{
			{Header: "ID", Width: 8}, {Header: "Employee"}, {Header: "Dealer", Width: 24}, {Header: "City"},
			{Header: "Check-in (UTC)", Width: 20}, {Header: "Check-out (UTC)", Width: 20},
			{Header: "Duration (min)"}, {Header: "Distance from dealer (m)", Width: 24}, {Header: "Notes", Width: 40},
		},
	}
	for _, v := range visits {
		name, _ := userCells(v.User)
		var dealerName interface{}
		var city *string
		if v.Dealer != nil {
			dealerName, city = v.Dealer.Name, v.Dealer.City
		}
		sheet.Rows = append(sheet.Rows, []interface{}{
			v.ID, name, dealerName, city, v.CheckInAt, v.CheckOutAt,
			v.DurationMinutes, v.DistanceFromDealerM, v.Notes,
		})
	}
	return xlsx.Build(s.now(), sheet)
}

// ExportClaims renders claims in [from, to] as a workbook. userId and status
// filter the same way as the claims list.
func (s *ReportService) ExportClaims(ctx context.Context, q ListClaimsQuery) ([]byte, error) {
	if _, err := daterange.Parse(q.From, q.To); err != nil {
		return nil, rangeError(err)
	}
	filter, err := claimFilter(q)
	if err != nil {
		return nil, err
	}
	claims, err := s.repos.Claims.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	sheet := xlsx.Sheet{
		Name:  "Claims",
		Title: "Claims " + q.From + " to " + q.To,
		Columns: []xlsx.Column{
			{Header: "ID", Width: 8}, {Header: "Employee"}, {Header: "Email", Width: 26}, {Header: "Date", Width: 12},
			{Header: "Type"}, {Header: "Amount"}, {Header: "Distance (km)"}, {Header: "Status"},
			{Header: "Approved by"}, {Header: "Approved at (UTC)", Width: 20}, {Header: "Description", Width: 40},
		},
	}
	var total float64
	for _, c := range claims {
		name, email := userCells(c.User)
		approver, _ := userCells(c.ApprovedByUser)
		sheet.Rows = append(sheet.Rows, []interface{}{
			c.ID, name, email, c.Date.UTC().Format(daterange.Layout), c.Type, c.Amount,
			c.DistanceKm, c.Status, approver, c.ApprovedAt, c.Description,
		})
		total += c.Amount
	}
	if len(claims) > 0 {
		sheet.Rows = append(sheet.Rows, []interface{}{nil, "Total", nil, nil, nil, total})
	}
	return xlsx.Build(s.now(), sheet)
}

func userCells(u *models.UserRef) (name, email interface{}) {
	if u == nil {
		return nil, nil
	}
	return u.Name, u.Email
}
