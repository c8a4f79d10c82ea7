package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nurpe/rentals-service/internal/model"
)

// EventRepository is the rental_events outbox.
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Append(ctx context.Context, events []model.RentalEvent) error {
	if len(events) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&events).Error
}

func (r *EventRepository) ListByRental(ctx context.Context, rentalID int64) ([]model.RentalEvent, error) {
	var events []model.RentalEvent
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, type, rental_id, driver_id, vehicle_id, plan_id, payload, occurred_at
		FROM rental_events
		WHERE rental_id = ?
		ORDER BY occurred_at ASC
	`, rentalID).Scan(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
