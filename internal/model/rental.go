package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type RentalStatus uint8

const (
	RentalStatusActive RentalStatus = iota + 1
	RentalStatusReturned
	RentalStatusCancelled
)

func (s RentalStatus) String() string {
	switch s {
	case RentalStatusActive:
		return "ACTIVE"
	case RentalStatusReturned:
		return "RETURNED"
	case RentalStatusCancelled:
		return "CANCELLED"
	}
	return "UNKNOWN"
}

func ParseRentalStatus(raw string) (RentalStatus, error) {
	switch raw {
	case "ACTIVE":
		return RentalStatusActive, nil
	case "RETURNED":
		return RentalStatusReturned, nil
	case "CANCELLED":
		return RentalStatusCancelled, nil
	}
	return 0, fmt.Errorf("unknown rental status %q", raw)
}

// IsTerminal reports whether no transition may leave s.
func (s RentalStatus) IsTerminal() bool {
	switch s {
	case RentalStatusActive:
		return false
	case RentalStatusReturned, RentalStatusCancelled:
		return true
	}
	return true
}

func (s RentalStatus) CanTransitionTo(next RentalStatus) bool {
	switch s {
	case RentalStatusActive:
		switch next {
		case RentalStatusReturned, RentalStatusCancelled:
			return true
		case RentalStatusActive:
			return false
		}
		return false
	case RentalStatusReturned, RentalStatusCancelled:
		return false
	}
	return false
}

func (s RentalStatus) Value() (driver.Value, error) {
	if s.String() == "UNKNOWN" {
		return nil, fmt.Errorf("invalid rental status %d", uint8(s))
	}
	return s.String(), nil
}

func (s *RentalStatus) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into RentalStatus", src)
	}
	parsed, err := ParseRentalStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s RentalStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *RentalStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseRentalStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

type Rental struct {
	ID              int64               `gorm:"primaryKey;autoIncrement"`
	DriverID        int64               `gorm:"not null;index"`
	VehicleID       int64               `gorm:"not null;index"`
	PlanID          int64               `gorm:"not null"`
	StartDate       time.Time           `gorm:"type:date;not null"`
	ExpectedEndDate time.Time           `gorm:"type:date;not null"`
	ActualEndDate   *time.Time          `gorm:"type:date"`
	TotalAmount     decimal.Decimal     `gorm:"type:numeric(12,2);not null"`
	FinalAmount     decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	Status          RentalStatus        `gorm:"type:varchar(16);not null;index"`
	CreatedAt       time.Time           `gorm:"not null"`
	UpdatedAt       *time.Time          `gorm:"autoUpdateTime:false"`
}

func (Rental) TableName() string { return "rentals" }

// NewRental opens an Active rental. Eligibility of the referenced driver,
// vehicle and plan is checked by the caller.
func NewRental(driverID, vehicleID, planID int64, start, expectedEnd time.Time, total decimal.Decimal, now time.Time) (*Rental, error) {
	start = DateOnly(start)
	expectedEnd = DateOnly(expectedEnd)
	switch {
	case driverID <= 0:
		return nil, invalid("driver_id", "driver id is required")
	case vehicleID <= 0:
		return nil, invalid("vehicle_id", "vehicle id is required")
	case planID <= 0:
		return nil, invalid("plan_id", "plan id is required")
	case !expectedEnd.After(start):
		return nil, invalid("expected_end_date", "expected end date must be after start date")
	case !total.IsPositive():
		return nil, invalid("total_amount", "total amount must be greater than zero")
	}
	return &Rental{
		DriverID:        driverID,
		VehicleID:       vehicleID,
		PlanID:          planID,
		StartDate:       start,
		ExpectedEndDate: expectedEnd,
		TotalAmount:     total,
		Status:          RentalStatusActive,
		CreatedAt:       now.UTC(),
	}, nil
}

func (r *Rental) IsActive() bool {
	return r.Status == RentalStatusActive
}

// Return closes the rental with the amount charged for actualEnd.
func (r *Rental) Return(actualEnd time.Time, final decimal.Decimal, now time.Time) ([]RentalEvent, error) {
	if !r.Status.CanTransitionTo(RentalStatusReturned) {
		return nil, ErrRentalNotActive
	}
	actualEnd = DateOnly(actualEnd)
	if actualEnd.Before(r.StartDate) {
		return nil, invalid("actual_return_date", "return date cannot be before start date")
	}

	stamp := now.UTC()
	r.ActualEndDate = &actualEnd
	r.FinalAmount = decimal.NewNullDecimal(final)
	r.Status = RentalStatusReturned
	r.UpdatedAt = &stamp

	return []RentalEvent{r.event(EventRentalReturned, stamp)}, nil
}

func (r *Rental) Cancel(now time.Time) ([]RentalEvent, error) {
	if !r.Status.CanTransitionTo(RentalStatusCancelled) {
		return nil, ErrRentalNotActive
	}
	stamp := now.UTC()
	r.Status = RentalStatusCancelled
	r.UpdatedAt = &stamp

	return []RentalEvent{r.event(EventRentalCancelled, stamp)}, nil
}

// Opened returns the event describing a freshly persisted rental.
func (r *Rental) Opened() []RentalEvent {
	return []RentalEvent{r.event(EventRentalCreated, r.CreatedAt)}
}

// DateOnly drops the time of day, keeping the calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
