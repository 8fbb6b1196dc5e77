package handlers

import (
	"salestrack/internal/adapters/http/middleware"
	"salestrack/internal/core/services"
	"salestrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ClaimHandler handles TA/DA claim endpoints
type ClaimHandler struct {
	claimService *services.ClaimService
}

// NewClaimHandler creates a new claim handler
func NewClaimHandler(claimService *services.ClaimService) *ClaimHandler {
	return &ClaimHandler{claimService: claimService}
}

// Create submits a claim
// @Summary Submit claim
// @Tags Claims
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateClaimInput true "Claim"
// @Success 201 {object} response.Response{data=models.Claim}
// @Failure 400 {object} response.Response
// @Router /claims [post]
func (h *ClaimHandler) Create(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "No token provided")
	}

	var req services.CreateClaimInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	claim, err := h.claimService.Create(c.UserContext(), userID, &req)
	if err != nil {
		return response.FromError(c, err, "Failed to submit claim")
	}

	return response.Created(c, "Claim submitted", claim)
}

// ListMine lists the caller's claims
// @Summary My claims
// @Tags Claims
// @Produce json
// @Security BearerAuth
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Success 200 {object} response.Response{data=[]models.Claim}
// @Router /claims/my [get]
func (h *ClaimHandler) ListMine(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "No token provided")
	}

	claims, err := h.claimService.ListMine(c.UserContext(), userID, c.Query("from"), c.Query("to"))
	if err != nil {
		return response.FromError(c, err, "Failed to load claims")
	}

	return response.Success(c, "", claims)
}

// ListAll lists claims of all users
// @Summary All claims
// @Tags Claims
// @Produce json
// @Security BearerAuth
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD"
// @Param userId query int false "User ID"
// @Param status query string false "PENDING, APPROVED or REJECTED"
// @Success 200 {object} response.Response{data=[]models.Claim}
// @Failure 403 {object} response.Response
// @Router /claims [get]
func (h *ClaimHandler) ListAll(c *fiber.Ctx) error {
	claims, err := h.claimService.ListAll(c.UserContext(), claimsQuery(c))
	if err != nil {
		return response.FromError(c, err, "Failed to load claims")
	}

	return response.Success(c, "", claims)
}

// SetStatus changes a claim's status
// @Summary Set claim status
// @Tags Claims
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Claim ID"
// @Param body body services.SetStatusInput true "Status"
// @Success 200 {object} response.Response{data=models.Claim}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /claims/{id}/status [patch]
func (h *ClaimHandler) SetStatus(c *fiber.Ctx) error {
	adminID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "No token provided")
	}

	claimID, ok := paramID(c, "id")
	if !ok {
		return response.NotFound(c, "Claim not found")
	}

	var req services.SetStatusInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	claim, err := h.claimService.SetStatus(c.UserContext(), adminID, claimID, req.Status)
	if err != nil {
		return response.FromError(c, err, "Failed to update claim")
	}

	return response.Success(c, "Claim status updated", claim)
}

func claimsQuery(c *fiber.Ctx) services.ListClaimsQuery {
	return services.ListClaimsQuery{
		From:   c.Query("from"),
		To:     c.Query("to"),
		UserID: c.Query("userId"),
		Status: c.Query("status"),
	}
}
