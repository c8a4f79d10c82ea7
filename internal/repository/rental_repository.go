package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nurpe/rentals-service/internal/model"
)

const rentalColumns = `
	id,
	driver_id,
	vehicle_id,
	plan_id,
	start_date,
	expected_end_date,
	actual_end_date,
	total_amount,
	final_amount,
	status,
	created_at,
	updated_at`

type RentalRepository struct {
	db *gorm.DB
}

func NewRentalRepository(db *gorm.DB) *RentalRepository {
	return &RentalRepository{db: db}
}

// Add persists a new Active rental. The vehicle's active-rental check is
// repeated inside the transaction; on PostgreSQL the vehicle row is locked
// first so concurrent bookings of the same vehicle serialize. The partial
// unique index uq_rentals_vehicle_active backs both paths.
func (r *RentalRepository) Add(ctx context.Context, rental *model.Rental) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			var locked int64
			if err := tx.Raw(`
				SELECT id FROM vehicles WHERE id = ? FOR UPDATE
			`, rental.VehicleID).Scan(&locked).Error; err != nil {
				return err
			}
		}

		var active int64
		if err := tx.Raw(`
			SELECT COUNT(*) FROM rentals WHERE vehicle_id = ? AND status = ?
		`, rental.VehicleID, model.RentalStatusActive).Scan(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return ErrActiveRentalExists
		}

		return tx.Create(rental).Error
	})
	if err != nil && !errors.Is(err, ErrActiveRentalExists) && isUniqueViolation(err) {
		return ErrActiveRentalExists
	}
	return err
}

// Update writes a transition out of Active. It fails with ErrStaleRental when
// the stored row is no longer Active.
func (r *RentalRepository) Update(ctx context.Context, rental *model.Rental) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE rentals
		SET
			status = ?,
			actual_end_date = ?,
			final_amount = ?,
			updated_at = ?
		WHERE id = ? AND status = ?
	`,
		rental.Status,
		rental.ActualEndDate,
		rental.FinalAmount,
		rental.UpdatedAt,
		rental.ID,
		model.RentalStatusActive,
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStaleRental
	}
	return nil
}

func (r *RentalRepository) GetByID(ctx context.Context, id int64) (*model.Rental, error) {
	var rental model.Rental
	err := r.db.WithContext(ctx).Raw(`
		SELECT`+rentalColumns+`
		FROM rentals
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&rental).Error
	if err != nil {
		return nil, err
	}
	if rental.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rental, nil
}

// GetByDriverID lists a driver's rentals, newest first.
func (r *RentalRepository) GetByDriverID(ctx context.Context, driverID int64) ([]model.Rental, error) {
	var rentals []model.Rental
	if err := r.db.WithContext(ctx).Raw(`
		SELECT`+rentalColumns+`
		FROM rentals
		WHERE driver_id = ?
		ORDER BY created_at DESC, id DESC
	`, driverID).Scan(&rentals).Error; err != nil {
		return nil, err
	}
	return rentals, nil
}

func (r *RentalRepository) GetActiveByVehicleID(ctx context.Context, vehicleID int64) (*model.Rental, error) {
	var rental model.Rental
	err := r.db.WithContext(ctx).Raw(`
		SELECT`+rentalColumns+`
		FROM rentals
		WHERE vehicle_id = ? AND status = ?
		LIMIT 1
	`, vehicleID, model.RentalStatusActive).Scan(&rental).Error
	if err != nil {
		return nil, err
	}
	if rental.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rental, nil
}
