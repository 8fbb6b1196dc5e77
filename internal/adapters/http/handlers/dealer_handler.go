package handlers

import (
	"salestrack/internal/adapters/http/middleware"
	"salestrack/internal/core/services"
	"salestrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DealerHandler handles dealer endpoints
type DealerHandler struct {
	dealerService *services.DealerService
}

// NewDealerHandler creates a new dealer handler
func NewDealerHandler(dealerService *services.DealerService) *DealerHandler {
	return &DealerHandler{dealerService: dealerService}
}

// Create registers a dealer pending approval
// @Summary Create dealer
// @Description type accepts dealer, sub-dealer or subdealer in any case
// @Tags Dealers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateDealerInput true "Dealer"
// @Success 201 {object} response.Response{data=models.Dealer}
// @Failure 400 {object} response.Response
// @Router /dealers [post]
func (h *DealerHandler) Create(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "No token provided")
	}

	var req services.CreateDealerInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	dealer, err := h.dealerService.Create(c.UserContext(), userID, &req)
	if err != nil {
		return response.FromError(c, err, "Failed to create dealer")
	}

	return response.Created(c, "Dealer created, pending approval", dealer)
}

// List filters dealers
// @Summary List dealers
// @Tags Dealers
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name or city substring"
// @Param type query string false "dealer or sub-dealer"
// @Param approved query string false "true or false"
// @Success 200 {object} response.Response{data=[]models.Dealer}
// @Router /dealers [get]
func (h *DealerHandler) List(c *fiber.Ctx) error {
	dealers, err := h.dealerService.List(c.UserContext(), services.ListDealersQuery{
		Search:   c.Query("search"),
		Type:     c.Query("type"),
		Approved: c.Query("approved"),
	})
	if err != nil {
		return response.FromError(c, err, "Failed to load dealers")
	}

	return response.Success(c, "", dealers)
}

// Approve approves a dealer
// @Summary Approve dealer
// @Tags Dealers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Dealer ID"
// @Success 200 {object} response.Response{data=models.Dealer}
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /dealers/{id}/approve [patch]
func (h *DealerHandler) Approve(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid dealer ID")
	}

	dealer, err := h.dealerService.Approve(c.UserContext(), id)
	if err != nil {
		return response.FromError(c, err, "Failed to approve dealer")
	}

	return response.Success(c, "Dealer approved", dealer)
}
