package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/nurpe/rentals-service/internal/model"
)

var migrationModels = []any{
	&model.RentalPlan{},
	&model.Driver{},
	&model.Vehicle{},
	&model.Rental{},
	&model.RentalEvent{},
}

// Statements run after AutoMigrate. Each must be idempotent and valid on both
// PostgreSQL and SQLite.
var migrationStatements = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_rentals_vehicle_active ON rentals (vehicle_id) WHERE status = 'ACTIVE';`,
	`CREATE INDEX IF NOT EXISTS idx_rentals_driver_created ON rentals (driver_id, created_at DESC);`,
	`CREATE INDEX IF NOT EXISTS idx_rental_events_rental_occurred ON rental_events (rental_id, occurred_at);`,
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(migrationModels...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
