package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nurpe/rentals-service/internal/model"
)

func sevenDayPlan() model.RentalPlan {
	return model.RentalPlan{
		ID:                    1,
		Name:                  "Plano 7 Dias",
		DurationDays:          7,
		DailyRate:             decimal.RequireFromString("30.00"),
		EarlyReturnPenaltyPct: decimal.RequireFromString("20.00"),
		LateReturnDailyFee:    decimal.RequireFromString("50.00"),
		IsActive:              true,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name     string
		from, to time.Time
		expected int
	}{
		{"same day", date(2024, 1, 1), date(2024, 1, 1), 0},
		{"one week", date(2024, 1, 1), date(2024, 1, 8), 7},
		{"leap february", date(2024, 2, 28), date(2024, 3, 1), 2},
		{"time of day ignored", time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC), time.Date(2024, 1, 2, 0, 1, 0, 0, time.UTC), 1},
		{"backwards", date(2024, 1, 8), date(2024, 1, 6), -2},
		{"four centuries", date(2024, 1, 1), date(2400, 1, 1), 137331},
		{"four centuries backwards", date(2400, 1, 1), date(2024, 1, 1), -137331},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysBetween(tt.from, tt.to))
		})
	}
}

func TestCalculateTotalAmount(t *testing.T) {
	engine := NewEngine()
	plan := sevenDayPlan()

	total := engine.CalculateTotalAmount(plan, date(2024, 1, 1), date(2024, 1, 8))
	assert.Equal(t, "210.00", total.StringFixed(2))
	assert.True(t, total.Equal(decimal.RequireFromString("210")))
}

func TestCalculateAmounts_FarFutureDates(t *testing.T) {
	engine := NewEngine()
	plan := sevenDayPlan()
	start := date(2024, 1, 1)

	final := engine.CalculateFinalAmount(plan, start, date(2024, 1, 8), date(2400, 1, 1))
	assert.Equal(t, "10986130.00", final.StringFixed(2))

	plan.DurationDays = 200000
	expectedEnd := start.AddDate(0, 0, plan.DurationDays)
	assert.Equal(t, plan.DurationDays, DaysBetween(start, expectedEnd))
	total := engine.CalculateTotalAmount(plan, start, expectedEnd)
	assert.Equal(t, "6000000.00", total.StringFixed(2))
}

func TestCalculateFinalAmount_Scenarios(t *testing.T) {
	engine := NewEngine()
	plan := sevenDayPlan()
	start := date(2024, 1, 1)
	expectedEnd := date(2024, 1, 8)

	tests := []struct {
		name     string
		returned time.Time
		expected string
		kind     ReturnKind
	}{
		{"early by two days", date(2024, 1, 6), "162.00", ReturnEarly},
		{"late by two days", date(2024, 1, 10), "370.00", ReturnLate},
		{"on the expected day", date(2024, 1, 8), "210.00", ReturnOnTime},
		{"same day as start", date(2024, 1, 1), "42.00", ReturnEarly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			final := engine.CalculateFinalAmount(plan, start, expectedEnd, tt.returned)
			assert.Equal(t, tt.expected, final.StringFixed(2))

			breakdown := engine.Breakdown(plan, start, expectedEnd, tt.returned)
			assert.Equal(t, tt.kind, breakdown.Kind)
			assert.True(t, final.Equal(breakdown.Total))
		})
	}
}

func TestBreakdown_Components(t *testing.T) {
	engine := NewEngine()
	plan := sevenDayPlan()

	early := engine.Breakdown(plan, date(2024, 1, 1), date(2024, 1, 8), date(2024, 1, 6))
	assert.Equal(t, 5, early.ActualDays)
	assert.Equal(t, 7, early.ExpectedDays)
	assert.Equal(t, 2, early.UnusedDays)
	assert.Equal(t, "150.00", early.BaseAmount.StringFixed(2))
	assert.Equal(t, "12.00", early.Penalty.StringFixed(2))
	assert.True(t, early.LateFee.IsZero())

	late := engine.Breakdown(plan, date(2024, 1, 1), date(2024, 1, 8), date(2024, 1, 10))
	assert.Equal(t, 9, late.ActualDays)
	assert.Equal(t, 2, late.ExtraDays)
	assert.Equal(t, "270.00", late.BaseAmount.StringFixed(2))
	assert.Equal(t, "100.00", late.LateFee.StringFixed(2))
	assert.True(t, late.Penalty.IsZero())
}

func TestCalculateFinalAmount_OnTimeEqualsRateTimesDuration(t *testing.T) {
	engine := NewEngine()
	for _, terms := range model.DefaultPlanTerms() {
		plan, err := model.NewRentalPlan(terms, time.Now())
		assert.NoError(t, err)

		start := date(2025, 3, 10)
		end := start.AddDate(0, 0, plan.DurationDays)
		final := engine.CalculateFinalAmount(*plan, start, end, end)
		expected := plan.DailyRate.Mul(decimal.NewFromInt(int64(plan.DurationDays)))
		assert.True(t, final.Equal(expected), "plan %s: %s != %s", plan.Name, final, expected)
		assert.True(t, final.Equal(engine.CalculateTotalAmount(*plan, start, end)))
	}
}

func TestRounding_HalfUp(t *testing.T) {
	engine := NewEngine()
	plan := model.RentalPlan{
		DurationDays:          3,
		DailyRate:             decimal.RequireFromString("10.05"),
		EarlyReturnPenaltyPct: decimal.RequireFromString("25"),
		LateReturnDailyFee:    decimal.Zero,
	}

	// one unused day: 10.05 * 0.25 = 2.5125 -> 2.51; base 20.10; total 22.6125 -> 22.61
	b := engine.Breakdown(plan, date(2024, 5, 1), date(2024, 5, 4), date(2024, 5, 3))
	assert.Equal(t, "2.51", b.Penalty.StringFixed(2))
	assert.Equal(t, "22.61", b.Total.String())

	plan.EarlyReturnPenaltyPct = decimal.RequireFromString("50")
	// 10.05 * 0.5 = 5.025 -> 5.03; total 25.125 -> 25.13
	b = engine.Breakdown(plan, date(2024, 5, 1), date(2024, 5, 4), date(2024, 5, 3))
	assert.Equal(t, "5.03", b.Penalty.String())
	assert.Equal(t, "25.13", b.Total.String())
}
