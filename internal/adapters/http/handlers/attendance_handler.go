package handlers

import (
	"salestrack/internal/adapters/http/middleware"
	"salestrack/internal/core/services"
	"salestrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AttendanceHandler handles attendance endpoints
type AttendanceHandler struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// Mark records an attendance punch
// @Summary Mark attendance
// @Description Mode is upper-cased; anything other than IN/OUT is stored as null
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.MarkAttendanceInput true "Punch"
// @Success 201 {object} response.Response{data=models.Attendance}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /attendance/mark [post]
func (h *AttendanceHandler) Mark(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "No token provided")
	}

	var req services.MarkAttendanceInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	record, err := h.attendanceService.Mark(c.UserContext(), userID, &req)
	if err != nil {
		return response.FromError(c, err, "Failed to mark attendance")
	}

	return response.Created(c, "Attendance marked", record)
}

// ListMine lists the caller's newest records
// @Summary My attendance
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]models.Attendance}
// @Router /attendance/mine [get]
func (h *AttendanceHandler) ListMine(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "No token provided")
	}

	records, err := h.attendanceService.ListMine(c.UserContext(), userID)
	if err != nil {
		return response.FromError(c, err, "Failed to load attendance")
	}

	return response.Success(c, "", records)
}
