package handlers

import (
	"fmt"

	"salestrack/internal/core/services"
	"salestrack/internal/pkg/response"
	"salestrack/internal/pkg/xlsx"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler serves admin report projections
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func attendanceQuery(c *fiber.Ctx) services.AttendanceReportQuery {
	return services.AttendanceReportQuery{
		From:   c.Query("from"),
		To:     c.Query("to"),
		UserID: c.Query("userId"),
	}
}

func visitsQuery(c *fiber.Ctx) services.VisitsReportQuery {
	return services.VisitsReportQuery{
		From:     c.Query("from"),
		To:       c.Query("to"),
		UserID:   c.Query("userId"),
		DealerID: c.Query("dealerId"),
	}
}

// Attendance report
// @Summary Attendance report
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param from query string true "YYYY-MM-DD"
// @Param to query string true "YYYY-MM-DD"
// @Param userId query int false "User ID"
// @Success 200 {object} response.Response{data=[]models.Attendance}
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /reports/attendance [get]
func (h *ReportHandler) Attendance(c *fiber.Ctx) error {
	rows, err := h.reportService.Attendance(c.UserContext(), attendanceQuery(c))
	if err != nil {
		return response.FromError(c, err, "Failed to load attendance report")
	}
	return response.Success(c, "", rows)
}

// Users report
// @Summary Users list
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]models.UserRef}
// @Failure 403 {object} response.Response
// @Router /reports/users [get]
func (h *ReportHandler) Users(c *fiber.Ctx) error {
	rows, err := h.reportService.Users(c.UserContext())
	if err != nil {
		return response.FromError(c, err, "Failed to load users")
	}
	return response.Success(c, "", rows)
}

// Visits report
// @Summary Visits report
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param from query string true "YYYY-MM-DD"
// @Param to query string true "YYYY-MM-DD"
// @Param userId query int false "User ID"
// @Param dealerId query int false "Dealer ID"
// @Success 200 {object} response.Response{data=[]models.Visit}
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /reports/visits [get]
func (h *ReportHandler) Visits(c *fiber.Ctx) error {
	rows, err := h.reportService.Visits(c.UserContext(), visitsQuery(c))
	if err != nil {
		return response.FromError(c, err, "Failed to load visits report")
	}
	return response.Success(c, "", rows)
}

// Dealers report
// @Summary Dealers report
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]models.Dealer}
// @Failure 403 {object} response.Response
// @Router /reports/dealers [get]
func (h *ReportHandler) Dealers(c *fiber.Ctx) error {
	rows, err := h.reportService.Dealers(c.UserContext())
	if err != nil {
		return response.FromError(c, err, "Failed to load dealers report")
	}
	return response.Success(c, "", rows)
}

// ExportAttendance downloads the attendance report
// @Summary Export attendance (xlsx)
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param from query string true "YYYY-MM-DD"
// @Param to query string true "YYYY-MM-DD"
// @Param userId query int false "User ID"
// @Success 200 {file} file
// @Failure 400 {object} response.Response
// @Router /reports/attendance/export [get]
func (h *ReportHandler) ExportAttendance(c *fiber.Ctx) error {
	q := attendanceQuery(c)
	body, err := h.reportService.ExportAttendance(c.UserContext(), q)
	if err != nil {
		return response.FromError(c, err, "Failed to export attendance")
	}
	return response.Download(c, exportName("attendance", q.From, q.To), xlsx.ContentType, body)
}

// ExportVisits downloads the visits report
// @Summary Export visits (xlsx)
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param from query string true "YYYY-MM-DD"
// @Param to query string true "YYYY-MM-DD"
// @Param userId query int false "User ID"
// @Param dealerId query int false "Dealer ID"
// @Success 200 {file} file
// @Failure 400 {object} response.Response
// @Router /reports/visits/export [get]
func (h *ReportHandler) ExportVisits(c *fiber.Ctx) error {
	q := visitsQuery(c)
	body, err := h.reportService.ExportVisits(c.UserContext(), q)
	if err != nil {
		return response.FromError(c, err, "Failed to export visits")
	}
	return response.Download(c, exportName("visits", q.From, q.To), xlsx.ContentType, body)
}

// ExportClaims downloads claims
// @Summary Export claims (xlsx)
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param from query string true "YYYY-MM-DD"
// @Param to query string true "YYYY-MM-DD"
// @Param userId query int false "User ID"
// @Param status query string false "PENDING, APPROVED or REJECTED"
// @Success 200 {file} file
// @Failure 400 {object} response.Response
// @Router /reports/claims/export [get]
func (h *ReportHandler) ExportClaims(c *fiber.Ctx) error {
	q := claimsQuery(c)
	body, err := h.reportService.ExportClaims(c.UserContext(), q)
	if err != nil {
		return response.FromError(c, err, "Failed to export claims")
	}
	return response.Download(c, exportName("claims", q.From, q.To), xlsx.ContentType, body)
}

func exportName(kind, from, to string) string {
	return fmt.Sprintf("%s_%s_%s.xlsx", kind, from, to)
}
