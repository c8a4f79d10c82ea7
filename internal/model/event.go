package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventRentalCreated   EventType = "rental.created"
	EventRentalReturned  EventType = "rental.returned"
	EventRentalCancelled EventType = "rental.cancelled"
)

// RentalEvent is a fact produced by a rental mutation. Publishing is up to
// whoever performed the mutation.
type RentalEvent struct {
	ID         uuid.UUID    `gorm:"type:varchar(36);primaryKey"`
	Type       EventType    `gorm:"type:varchar(40);not null;index"`
	RentalID   int64        `gorm:"not null;index"`
	DriverID   int64        `gorm:"not null"`
	VehicleID  int64        `gorm:"not null"`
	PlanID     int64        `gorm:"not null"`
	Payload    EventPayload `gorm:"type:text"`
	OccurredAt time.Time    `gorm:"not null"`
}

// EventPayload is the rental snapshot carried by an event, stored as JSON text.
type EventPayload map[string]string

func (p EventPayload) Value() (driver.Value, error) {
	if p == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(map[string]string(p))
	if err != nil {
		return nil, fmt.Errorf("encode event payload: %w", err)
	}
	return string(raw), nil
}

func (p *EventPayload) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*p = EventPayload{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("unsupported event payload type %T", src)
	}
	out := EventPayload{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("decode event payload: %w", err)
	}
	*p = out
	return nil
}

func (RentalEvent) TableName() string { return "rental_events" }

func (r *Rental) event(t EventType, at time.Time) RentalEvent {
	payload := EventPayload{
		"status":            r.Status.String(),
		"start_date":        r.StartDate.Format(time.DateOnly),
		"expected_end_date": r.ExpectedEndDate.Format(time.DateOnly),
		"total_amount":      r.TotalAmount.StringFixed(2),
	}
	if r.ActualEndDate != nil {
		payload["actual_end_date"] = r.ActualEndDate.Format(time.DateOnly)
	}
	if r.FinalAmount.Valid {
		payload["final_amount"] = r.FinalAmount.Decimal.StringFixed(2)
	}
	return RentalEvent{
		ID:         uuid.New(),
		Type:       t,
		RentalID:   r.ID,
		DriverID:   r.DriverID,
		VehicleID:  r.VehicleID,
		PlanID:     r.PlanID,
		Payload:    payload,
		OccurredAt: at.UTC(),
	}
}
