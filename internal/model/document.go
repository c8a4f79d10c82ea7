package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ChargeLine struct {
	Label  string
	Amount decimal.Decimal
}

// ReceiptDocument is everything printed on a rental receipt. Lines is empty
// until the rental has been returned.
type ReceiptDocument struct {
	Rental   Rental
	Plan     RentalPlan
	Driver   Driver
	Vehicle  Vehicle
	Lines    []ChargeLine
	IssuedAt time.Time
}

type StatementRow struct {
	Rental   Rental
	PlanName string
}

type DriverStatement struct {
	Driver      Driver
	Rows        []StatementRow
	GeneratedAt time.Time
}
