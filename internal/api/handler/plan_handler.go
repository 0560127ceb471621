package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nestera/savings-api/internal/core/domain"
	"github.com/nestera/savings-api/internal/core/ports"
)

type PlanHandler struct {
	planService ports.PlanService
}

func NewPlanHandler(planService ports.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

type createPlanRequest struct {
	Type          string `json:"type"           validate:"required,oneof=lock autosave"`
	AmountStroops int64  `json:"amount_stroops" validate:"required,gt=0"`
	DurationDays  int    `json:"duration_days"  validate:"required,gt=0"`
}

type planListResponse struct {
	Plans []domain.Plan `json:"plans"`
}

// Create handles POST /v1/plans for the authenticated caller.
//
// @Summary      Create a savings plan
// @Tags         plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPlanRequest  true  "Plan details"
// @Success      201   {object}  domain.Plan
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/plans [post]
func (h *PlanHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createPlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	plan, err := h.planService.Create(c.Request().Context(), identity.ID, ports.CreatePlanInput{
		Type:          domain.PlanType(req.Type),
		AmountStroops: req.AmountStroops,
		DurationDays:  req.DurationDays,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, plan)
}

// List handles GET /v1/plans, scoped to the authenticated caller.
//
// @Summary      List the caller's savings plans
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  planListResponse
// @Failure      401   {object}  map[string]string
// @Router       /v1/plans [get]
func (h *PlanHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	plans, err := h.planService.ListByUser(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, planListResponse{Plans: plans})
}

// ListAll handles GET /v1/admin/plans. The ADMIN requirement is declared
// in the router's role policy, not here.
//
// @Summary      List all savings plans
// @Tags         plans
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  planListResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/admin/plans [get]
func (h *PlanHandler) ListAll(c echo.Context) error {
	plans, err := h.planService.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, planListResponse{Plans: plans})
}
