package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/rentals-service/internal/service"
)

type createRentalRequest struct {
	DriverID  *int64 `json:"driver_id"`
	VehicleID int64  `json:"vehicle_id" binding:"required"`
	PlanID    int64  `json:"plan_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
}

type createRentalResponse struct {
	RentalID        int64  `json:"rental_id"`
	TotalAmount     string `json:"total_amount"`
	ExpectedEndDate string `json:"expected_end_date"`
}

func (h *Handler) createRental(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}

	var req createRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	driverID := int64(0)
	switch {
	case req.DriverID != nil:
		driverID = *req.DriverID
	case principal.DriverID != nil:
		driverID = *principal.DriverID
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "driver_id is required"})
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
		return
	}

	result, err := h.rentals.CreateRental(c.Request.Context(), service.CreateRentalInput{
		DriverID:  driverID,
		VehicleID: req.VehicleID,
		PlanID:    req.PlanID,
		StartDate: startDate,
		Principal: principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, createRentalResponse{
		RentalID:        result.RentalID,
		TotalAmount:     result.TotalAmount.StringFixed(2),
		ExpectedEndDate: result.ExpectedEndDate.Format(time.DateOnly),
	})
}

type quoteRequest struct {
	PlanID    int64  `json:"plan_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

type quoteResponse struct {
	PlanID    int64  `json:"plan_id"`
	PlanName  string `json:"plan_name"`
	DailyRate string `json:"daily_rate"`
	Days      int    `json:"days"`
	Total     string `json:"total"`
}

func (h *Handler) quoteRental(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date"})
		return
	}

	quote, err := h.rentals.QuoteTotal(c.Request.Context(), req.PlanID, start, end)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, quoteResponse{
		PlanID:    quote.PlanID,
		PlanName:  quote.PlanName,
		DailyRate: quote.DailyRate.StringFixed(2),
		Days:      quote.Days,
		Total:     quote.Total.StringFixed(2),
	})
}

func (h *Handler) getRental(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	rental, err := h.rentals.GetRental(c.Request.Context(), id, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRentalResponse(*rental))
}

type returnRentalRequest struct {
	ActualReturnDate string `json:"actual_return_date" binding:"required"`
}

type returnRentalResponse struct {
	RentalID         int64             `json:"rental_id"`
	FinalAmount      string            `json:"final_amount"`
	ActualReturnDate string            `json:"actual_return_date"`
	Breakdown        breakdownResponse `json:"breakdown"`
}

func (h *Handler) returnRental(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req returnRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actual, err := parseDate(req.ActualReturnDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid actual_return_date"})
		return
	}

	result, err := h.rentals.ReturnRental(c.Request.Context(), service.ReturnRentalInput{
		RentalID:         id,
		ActualReturnDate: actual,
		Principal:        principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, returnRentalResponse{
		RentalID:         result.RentalID,
		FinalAmount:      result.FinalAmount.StringFixed(2),
		ActualReturnDate: result.ActualReturnDate.Format(time.DateOnly),
		Breakdown:        toBreakdownResponse(result.Breakdown),
	})
}

func (h *Handler) cancelRental(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	rental, err := h.rentals.CancelRental(c.Request.Context(), id, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRentalResponse(*rental))
}

func (h *Handler) rentalReceipt(c *gin.Context) {
	principal, ok := principalOrAbort(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	doc, err := h.documents.RentalReceipt(c.Request.Context(), id, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	sendFile(c, contentTypePDF, doc)
}
