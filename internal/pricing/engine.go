// Package pricing turns a rental plan and calendar dates into amounts due.
// Every amount leaving the package is rounded half-up to two places.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nurpe/rentals-service/internal/model"
)

const amountPlaces = 2

var hundred = decimal.NewFromInt(100)

type ReturnKind string

const (
	ReturnOnTime ReturnKind = "ON_TIME"
	ReturnEarly  ReturnKind = "EARLY"
	ReturnLate   ReturnKind = "LATE"
)

// Breakdown itemizes a final charge.
type Breakdown struct {
	Kind         ReturnKind
	ActualDays   int
	ExpectedDays int
	DailyRate    decimal.Decimal
	BaseAmount   decimal.Decimal
	UnusedDays   int
	Penalty      decimal.Decimal
	ExtraDays    int
	LateFee      decimal.Decimal
	Total        decimal.Decimal
}

// Engine is stateless and safe for concurrent use.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween counts calendar days from one date to another, ignoring the
// time of day. Unix seconds keep the count exact past the range of
// time.Duration.
func DaysBetween(from, to time.Time) int {
	return int((model.DateOnly(to).Unix() - model.DateOnly(from).Unix()) / secondsPerDay)
}

func (e *Engine) CalculateTotalAmount(plan model.RentalPlan, start, expectedEnd time.Time) decimal.Decimal {
	days := DaysBetween(start, expectedEnd)
	return round(plan.DailyRate.Mul(decimal.NewFromInt(int64(days))))
}

func (e *Engine) CalculateFinalAmount(plan model.RentalPlan, start, expectedEnd, actualReturn time.Time) decimal.Decimal {
	return e.Breakdown(plan, start, expectedEnd, actualReturn).Total
}

// Breakdown computes the final charge for a return on actualReturn.
//
// Late returns pay the daily rate for every day actually used plus the late
// fee for each day past the expected end.
func (e *Engine) Breakdown(plan model.RentalPlan, start, expectedEnd, actualReturn time.Time) Breakdown {
	actualDays := DaysBetween(start, actualReturn)
	expectedDays := DaysBetween(start, expectedEnd)
	base := plan.DailyRate.Mul(decimal.NewFromInt(int64(actualDays)))

	out := Breakdown{
		Kind:         ReturnOnTime,
		ActualDays:   actualDays,
		ExpectedDays: expectedDays,
		DailyRate:    plan.DailyRate,
		BaseAmount:   round(base),
		Penalty:      decimal.Zero,
		LateFee:      decimal.Zero,
	}

	returned := model.DateOnly(actualReturn)
	due := model.DateOnly(expectedEnd)
	switch {
	case returned.Before(due):
		unused := expectedDays - actualDays
		unusedAmount := plan.DailyRate.Mul(decimal.NewFromInt(int64(unused)))
		penalty := unusedAmount.Mul(plan.EarlyReturnPenaltyPct.Div(hundred))
		out.Kind = ReturnEarly
		out.UnusedDays = unused
		out.Penalty = round(penalty)
		out.Total = round(base.Add(penalty))
	case returned.After(due):
		extra := actualDays - expectedDays
		fee := plan.LateReturnDailyFee.Mul(decimal.NewFromInt(int64(extra)))
		out.Kind = ReturnLate
		out.ExtraDays = extra
		out.LateFee = round(fee)
		out.Total = round(base.Add(fee))
	default:
		out.Total = round(base)
	}
	return out
}

// round applies half-up rounding; amounts handled here are never negative,
// where half-up and half-away-from-zero agree.
func round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(amountPlaces)
}
