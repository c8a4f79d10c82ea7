package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/nurpe/rentals-service/internal/model"
)

type planRequest struct {
	Name                  string          `json:"name"`
	DurationDays          int             `json:"duration_days"`
	DailyRate             decimal.Decimal `json:"daily_rate"`
	EarlyReturnPenaltyPct decimal.Decimal `json:"early_return_penalty_pct"`
	LateReturnDailyFee    decimal.Decimal `json:"late_return_daily_fee"`
}

func (r planRequest) terms() model.PlanTerms {
	return model.PlanTerms{
		Name:                  r.Name,
		DurationDays:          r.DurationDays,
		DailyRate:             r.DailyRate,
		EarlyReturnPenaltyPct: r.EarlyReturnPenaltyPct,
		LateReturnDailyFee:    r.LateReturnDailyFee,
	}
}

func (h *Handler) listPlans(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	var (
		plans []model.RentalPlan
		err   error
	)
	if c.Query("all") == "true" && principal.IsAdmin() {
		plans, err = h.plans.GetAll(c.Request.Context())
	} else {
		plans, err = h.plans.GetActive(c.Request.Context())
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]planResponse, 0, len(plans))
	for _, plan := range plans {
		resp = append(resp, toPlanResponse(plan))
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (h *Handler) getPlan(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	plan, err := h.plans.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPlanResponse(*plan))
}

func (h *Handler) createPlan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plan, err := h.plans.CreatePlan(c.Request.Context(), req.terms())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPlanResponse(*plan))
}

func (h *Handler) updatePlan(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plan, err := h.plans.UpdatePlan(c.Request.Context(), id, req.terms())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPlanResponse(*plan))
}

func (h *Handler) activatePlan(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	plan, err := h.plans.Activate(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPlanResponse(*plan))
}

func (h *Handler) deactivatePlan(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	plan, err := h.plans.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPlanResponse(*plan))
}

func (h *Handler) exportPlans(c *gin.Context) {
	doc, err := h.documents.PlanCatalog(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	sendFile(c, contentTypeXLSX, doc)
}
