package http

import (
	"time"

	"github.com/nurpe/rentals-service/internal/model"
	"github.com/nurpe/rentals-service/internal/pricing"
)

type planResponse struct {
	ID                    int64     `json:"id"`
	Name                  string    `json:"name"`
	DurationDays          int       `json:"duration_days"`
	DailyRate             string    `json:"daily_rate"`
	EarlyReturnPenaltyPct string    `json:"early_return_penalty_pct"`
	LateReturnDailyFee    string    `json:"late_return_daily_fee"`
	IsActive              bool      `json:"is_active"`
	CreatedAt             time.Time `json:"created_at"`
}

func toPlanResponse(p model.RentalPlan) planResponse {
	return planResponse{
		ID:                    p.ID,
		Name:                  p.Name,
		DurationDays:          p.DurationDays,
		DailyRate:             p.DailyRate.StringFixed(2),
		EarlyReturnPenaltyPct: p.EarlyReturnPenaltyPct.StringFixed(2),
		LateReturnDailyFee:    p.LateReturnDailyFee.StringFixed(2),
		IsActive:              p.IsActive,
		CreatedAt:             p.CreatedAt,
	}
}

type rentalResponse struct {
	ID              int64              `json:"id"`
	DriverID        int64              `json:"driver_id"`
	VehicleID       int64              `json:"vehicle_id"`
	PlanID          int64              `json:"plan_id"`
	StartDate       string             `json:"start_date"`
	ExpectedEndDate string             `json:"expected_end_date"`
	ActualEndDate   *string            `json:"actual_end_date"`
	TotalAmount     string             `json:"total_amount"`
	FinalAmount     *string            `json:"final_amount"`
	Status          model.RentalStatus `json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       *time.Time         `json:"updated_at"`
}

func toRentalResponse(r model.Rental) rentalResponse {
	resp := rentalResponse{
		ID:              r.ID,
		DriverID:        r.DriverID,
		VehicleID:       r.VehicleID,
		PlanID:          r.PlanID,
		StartDate:       r.StartDate.Format(time.DateOnly),
		ExpectedEndDate: r.ExpectedEndDate.Format(time.DateOnly),
		TotalAmount:     r.TotalAmount.StringFixed(2),
		Status:          r.Status,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.ActualEndDate != nil {
		actual := r.ActualEndDate.Format(time.DateOnly)
		resp.ActualEndDate = &actual
	}
	if r.FinalAmount.Valid {
		final := r.FinalAmount.Decimal.StringFixed(2)
		resp.FinalAmount = &final
	}
	return resp
}

type breakdownResponse struct {
	Kind         pricing.ReturnKind `json:"kind"`
	ActualDays   int                `json:"actual_days"`
	ExpectedDays int                `json:"expected_days"`
	DailyRate    string             `json:"daily_rate"`
	BaseAmount   string             `json:"base_amount"`
	UnusedDays   int                `json:"unused_days"`
	Penalty      string             `json:"penalty"`
	ExtraDays    int                `json:"extra_days"`
	LateFee      string             `json:"late_fee"`
	Total        string             `json:"total"`
}

func toBreakdownResponse(b pricing.Breakdown) breakdownResponse {
	return breakdownResponse{
		Kind:         b.Kind,
		ActualDays:   b.ActualDays,
		ExpectedDays: b.ExpectedDays,
		DailyRate:    b.DailyRate.StringFixed(2),
		BaseAmount:   b.BaseAmount.StringFixed(2),
		UnusedDays:   b.UnusedDays,
		Penalty:      b.Penalty.StringFixed(2),
		ExtraDays:    b.ExtraDays,
		LateFee:      b.LateFee.StringFixed(2),
		Total:        b.Total.StringFixed(2),
	}
}

type driverResponse struct {
	ID              int64                 `json:"id"`
	Identifier      string                `json:"identifier"`
	Name            string                `json:"name"`
	LicenseNumber   string                `json:"license_number"`
	LicenseCategory model.LicenseCategory `json:"license_category"`
	CreatedAt       time.Time             `json:"created_at"`
}

func toDriverResponse(d model.Driver) driverResponse {
	return driverResponse{
		ID:              d.ID,
		Identifier:      d.Identifier,
		Name:            d.Name,
		LicenseNumber:   d.LicenseNumber,
		LicenseCategory: d.LicenseCategory,
		CreatedAt:       d.CreatedAt,
	}
}

type vehicleResponse struct {
	ID           int64     `json:"id"`
	Identifier   string    `json:"identifier"`
	Year         int       `json:"year"`
	Model        string    `json:"model"`
	LicensePlate string    `json:"license_plate"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func toVehicleResponse(v model.Vehicle) vehicleResponse {
	return vehicleResponse{
		ID:           v.ID,
		Identifier:   v.Identifier,
		Year:         v.Year,
		Model:        v.Model,
		LicensePlate: v.LicensePlate,
		IsActive:     v.IsActive,
		CreatedAt:    v.CreatedAt,
	}
}
