package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type RentalPlan struct {
	ID                    int64           `gorm:"primaryKey;autoIncrement"`
	Name                  string          `gorm:"type:varchar(120);not null"`
	DurationDays          int             `gorm:"not null;index"`
	DailyRate             decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	EarlyReturnPenaltyPct decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	LateReturnDailyFee    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IsActive              bool            `gorm:"not null"`
	CreatedAt             time.Time       `gorm:"not null"`
}

func (RentalPlan) TableName() string { return "rental_plans" }

// PlanTerms groups the editable attributes of a plan.
type PlanTerms struct {
	Name                  string
	DurationDays          int
	DailyRate             decimal.Decimal
	EarlyReturnPenaltyPct decimal.Decimal
	LateReturnDailyFee    decimal.Decimal
}

func (t PlanTerms) validate() error {
	switch {
	case strings.TrimSpace(t.Name) == "":
		return invalid("name", "plan name is required")
	case t.DurationDays <= 0:
		return invalid("duration_days", "duration must be greater than zero")
	case !t.DailyRate.IsPositive():
		return invalid("daily_rate", "daily rate must be greater than zero")
	case t.EarlyReturnPenaltyPct.IsNegative():
		return invalid("early_return_penalty_pct", "early return penalty cannot be negative")
	case t.LateReturnDailyFee.IsNegative():
		return invalid("late_return_daily_fee", "late return fee cannot be negative")
	}
	return nil
}

// NewRentalPlan builds an active plan. Invalid terms never produce a plan.
func NewRentalPlan(terms PlanTerms, now time.Time) (*RentalPlan, error) {
	if err := terms.validate(); err != nil {
		return nil, err
	}
	return &RentalPlan{
		Name:                  strings.TrimSpace(terms.Name),
		DurationDays:          terms.DurationDays,
		DailyRate:             terms.DailyRate,
		EarlyReturnPenaltyPct: terms.EarlyReturnPenaltyPct,
		LateReturnDailyFee:    terms.LateReturnDailyFee,
		IsActive:              true,
		CreatedAt:             now.UTC(),
	}, nil
}

// Update replaces the terms of the plan, leaving it untouched on error.
func (p *RentalPlan) Update(terms PlanTerms) error {
	if err := terms.validate(); err != nil {
		return err
	}
	p.Name = strings.TrimSpace(terms.Name)
	p.DurationDays = terms.DurationDays
	p.DailyRate = terms.DailyRate
	p.EarlyReturnPenaltyPct = terms.EarlyReturnPenaltyPct
	p.LateReturnDailyFee = terms.LateReturnDailyFee
	return nil
}

func (p *RentalPlan) Activate() {
	p.IsActive = true
}

func (p *RentalPlan) Deactivate() {
	p.IsActive = false
}

// DefaultPlanTerms is the catalog created on first startup.
func DefaultPlanTerms() []PlanTerms {
	return []PlanTerms{
		{Name: "Plano 7 Dias", DurationDays: 7, DailyRate: decimal.RequireFromString("30.00"), EarlyReturnPenaltyPct: decimal.RequireFromString("20.00"), LateReturnDailyFee: decimal.RequireFromString("50.00")},
		{Name: "Plano 15 Dias", DurationDays: 15, DailyRate: decimal.RequireFromString("28.00"), EarlyReturnPenaltyPct: decimal.RequireFromString("40.00"), LateReturnDailyFee: decimal.RequireFromString("50.00")},
		{Name: "Plano 30 Dias", DurationDays: 30, DailyRate: decimal.RequireFromString("22.00"), EarlyReturnPenaltyPct: decimal.Zero, LateReturnDailyFee: decimal.RequireFromString("50.00")},
		{Name: "Plano 45 Dias", DurationDays: 45, DailyRate: decimal.RequireFromString("20.00"), EarlyReturnPenaltyPct: decimal.Zero, LateReturnDailyFee: decimal.RequireFromString("50.00")},
		{Name: "Plano 50 Dias", DurationDays: 50, DailyRate: decimal.RequireFromString("18.00"), EarlyReturnPenaltyPct: decimal.Zero, LateReturnDailyFee: decimal.RequireFromString("50.00")},
	}
}
