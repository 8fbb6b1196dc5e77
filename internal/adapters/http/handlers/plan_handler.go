package handlers

import (
	"salestrack/internal/adapters/http/middleware"
	"salestrack/internal/core/services"
	"salestrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PlanHandler handles route plan (PJP) endpoints
type PlanHandler struct {
	planService *services.PlanService
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(planService *services.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// Save replaces the caller's plan for one day
// @Summary Save PJP
// @Description Re-submitting a date replaces every item of that day's plan
// @Tags PJP
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.SavePlanInput true "Plan"
// @Success 200 {object} response.Response{data=models.RoutePlan}
// @Failure 400 {object} response.Response
// @Router /pjp [post]
func (h *PlanHandler) Save(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "No token provided")
	}

	var req services.SavePlanInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body, items must be an array")
	}

	plan, err := h.planService.Save(c.UserContext(), userID, &req)
	if err != nil {
		return response.FromError(c, err, "Failed to save plan")
	}

	return response.Success(c, "Plan saved", plan)
}

// ListMine lists the caller's plans
// @Summary My PJP
// @Tags PJP
// @Produce json
// @Security BearerAuth
// @Param from query string true "YYYY-MM-DD"
// @Param to query string true "YYYY-MM-DD"
// @Success 200 {object} response.Response{data=[]models.RoutePlan}
// @Failure 400 {object} response.Response
// @Router /pjp/my [get]
func (h *PlanHandler) ListMine(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return response.Unauthorized(c, "No token provided")
	}

	plans, err := h.planService.ListMine(c.UserContext(), userID, c.Query("from"), c.Query("to"))
	if err != nil {
		return response.FromError(c, err, "Failed to load plans")
	}

	return response.Success(c, "", plans)
}

// ListForUser lists any user's plans
// @Summary User PJP
// @Tags PJP
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param from query string true "YYYY-MM-DD"
// @Param to query string true "YYYY-MM-DD"
// @Success 200 {object} response.Response{data=[]models.RoutePlan}
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /pjp/user/{userId} [get]
func (h *PlanHandler) ListForUser(c *fiber.Ctx) error {
	targetID, ok := paramID(c, "userId")
	if !ok {
		return response.BadRequest(c, "Invalid user ID")
	}

	plans, err := h.planService.ListForUser(c.UserContext(), targetID, c.Query("from"), c.Query("to"))
	if err != nil {
		return response.FromError(c, err, "Failed to load plans")
	}

	return response.Success(c, "", plans)
}
