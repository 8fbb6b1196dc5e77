package handlers

import (
	"time"

	"salestrack/internal/core/services"
	"salestrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Summary returns today's counters
// @Summary Dashboard summary
// @Description Counts for the current UTC day
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=services.DashboardSummary}
// @Router /dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	data, err := h.dashboardService.Summary(c.UserContext(), time.Now())
	if err != nil {
		return response.FromError(c, err, "Failed to load dashboard")
	}
	return response.Success(c, "", data)
}
