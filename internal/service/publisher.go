package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nurpe/rentals-service/internal/model"
)

// OutboxPublisher stores events in the rental_events outbox and logs them.
type OutboxPublisher struct {
	store EventStore
	log   zerolog.Logger
}

func NewOutboxPublisher(store EventStore, log zerolog.Logger) *OutboxPublisher {
	return &OutboxPublisher{store: store, log: log}
}

func (p *OutboxPublisher) Publish(ctx context.Context, events []model.RentalEvent) error {
	if err := p.store.Append(ctx, events); err != nil {
		return err
	}
	for _, event := range events {
		p.log.Info().
			Str("event_id", event.ID.String()).
			Str("type", string(event.Type)).
			Int64("rental_id", event.RentalID).
			Int64("vehicle_id", event.VehicleID).
			Msg("rental event published")
	}
	return nil
}
