package handlers

import (
	"salestrack/internal/adapters/http/middleware"
	"salestrack/internal/core/services"
	"salestrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// VisitHandler handles dealer visit endpoints
type VisitHandler struct {
	visitService *services.VisitService
}

// NewVisitHandler creates a new visit handler
func NewVisitHandler(visitService *services.VisitService) *VisitHandler {
	return &VisitHandler{visitService: visitService}
}

// CheckIn starts a visit
// @Summary Check in at dealer
// @Tags Visits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CheckInInput true "Check-in"
// @Success 201 {object} response.Response{data=models.Visit}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /visits/check-in [post]
func (h *VisitHandler) CheckIn(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "No token provided")
	}

	var req services.CheckInInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	visit, err := h.visitService.CheckIn(c.UserContext(), userID, &req)
	if err != nil {
		return response.FromError(c, err, "Failed to check in")
	}

	return response.Created(c, "Checked in", visit)
}

// CheckOut ends the caller's visit
// @Summary Check out of visit
// @Tags Visits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Visit ID"
// @Param body body services.CheckOutInput false "Check-out position"
// @Success 200 {object} response.Response{data=models.Visit}
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /visits/{id}/check-out [post]
func (h *VisitHandler) CheckOut(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "No token provided")
	}

	visitID, ok := paramID(c, "id")
	if !ok {
		return response.NotFound(c, services.ErrVisitNotFound.Message)
	}

	var req services.CheckOutInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return response.BadRequest(c, "Invalid request body")
		}
	}

	visit, err := h.visitService.CheckOut(c.UserContext(), userID, visitID, &req)
	if err != nil {
		return response.FromError(c, err, "Failed to check out")
	}

	return response.Success(c, "Checked out", visit)
}

// ListMine lists the caller's visits
// @Summary My visits
// @Tags Visits
// @Produce json
// @Security BearerAuth
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Param dealerId query int false "Dealer ID"
// @Success 200 {object} response.Response{data=[]models.Visit}
// @Failure 400 {object} response.Response
// @Router /visits/mine [get]
func (h *VisitHandler) ListMine(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "No token provided")
	}

	visits, err := h.visitService.ListMine(c.UserContext(), userID, services.ListVisitsQuery{
		From:     c.Query("from"),
		To:       c.Query("to"),
		DealerID: c.Query("dealerId"),
	})
	if err != nil {
		return response.FromError(c, err, "Failed to load visits")
	}

	return response.Success(c, "", visits)
}
