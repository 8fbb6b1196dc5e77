package handlers

import (
	"salestrack/internal/adapters/http/middleware"
	"salestrack/internal/core/services"
	"salestrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LocationHandler handles live location endpoints
type LocationHandler struct {
	locationService *services.LocationService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationService *services.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// Ping stores the caller's current position
// @Summary Live location ping
// @Tags Location
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.PingInput true "Position"
// @Success 200 {object} response.Response{data=models.LastLocation}
// @Failure 400 {object} response.Response
// @Router /location/live [post]
func (h *LocationHandler) Ping(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "No token provided")
	}

	var req services.PingInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	loc, err := h.locationService.Ping(c.UserContext(), userID, &req)
	if err != nil {
		return response.FromError(c, err, "Failed to update location")
	}

	return response.Success(c, "Location updated", loc)
}

// ListAll lists every user's last position
// @Summary All live locations
// @Tags Location
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]models.LastLocation}
// @Failure 403 {object} response.Response
// @Router /location/all [get]
func (h *LocationHandler) ListAll(c *fiber.Ctx) error {
	rows, err := h.locationService.ListAll(c.UserContext())
	if err != nil {
		return response.FromError(c, err, "Failed to load locations")
	}

	return response.Success(c, "", rows)
}
