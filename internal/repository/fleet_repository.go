package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nurpe/rentals-service/internal/model"
)

type DriverRepository struct {
	db *gorm.DB
}

func NewDriverRepository(db *gorm.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

func (r *DriverRepository) Add(ctx context.Context, driver *model.Driver) error {
	if err := r.db.WithContext(ctx).Create(driver).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *DriverRepository) GetByID(ctx context.Context, id int64) (*model.Driver, error) {
	var driver model.Driver
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, identifier, name, license_number, license_category, created_at
		FROM drivers
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&driver).Error; err != nil {
		return nil, err
	}
	if driver.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &driver, nil
}

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Add(ctx context.Context, vehicle *model.Vehicle) error {
	if err := r.db.WithContext(ctx).Create(vehicle).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id int64) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, identifier, year, model, license_plate, is_active, created_at
		FROM vehicles
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&vehicle).Error; err != nil {
		return nil, err
	}
	if vehicle.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &vehicle, nil
}

// List returns active vehicles ordered by id, optionally only the one with
// the given plate.
func (r *VehicleRepository) List(ctx context.Context, plate string) ([]model.Vehicle, error) {
	query := `
		SELECT id, identifier, year, model, license_plate, is_active, created_at
		FROM vehicles
		WHERE is_active = ?
	`
	args := []interface{}{true}
	if plate != "" {
		query += " AND license_plate = ?"
		args = append(args, plate)
	}
	query += " ORDER BY id ASC"

	var vehicles []model.Vehicle
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *VehicleRepository) UpdatePlate(ctx context.Context, id int64, plate string) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE vehicles SET license_plate = ? WHERE id = ?
	`, plate, id)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return ErrDuplicate
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *VehicleRepository) Deactivate(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE vehicles SET is_active = ? WHERE id = ?
	`, false, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
