package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/nurpe/rentals-service/internal/model"
	"github.com/nurpe/rentals-service/internal/repository"
)

// FleetService registers the drivers and vehicles that rentals refer to.
type FleetService struct {
	drivers  DriverRepository
	vehicles VehicleRepository
	log      zerolog.Logger
	now      func() time.Time
}

func NewFleetService(drivers DriverRepository, vehicles VehicleRepository, log zerolog.Logger) *FleetService {
	return &FleetService{drivers: drivers, vehicles: vehicles, log: log, now: utcNow}
}

type RegisterDriverInput struct {
	Identifier      string
	Name            string
	LicenseNumber   string
	LicenseCategory string
}

func (s *FleetService) RegisterDriver(ctx context.Context, input RegisterDriverInput) (*model.Driver, error) {
	driver, err := model.NewDriver(input.Identifier, input.Name, input.LicenseNumber, input.LicenseCategory, s.now())
	if err != nil {
		return nil, invalidInput(err)
	}
	if err := s.drivers.Add(ctx, driver); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateDriver
		}
		return nil, err
	}
	s.log.Info().Int64("driver_id", driver.ID).Str("category", string(driver.LicenseCategory)).Msg("driver registered")
	return driver, nil
}

func (s *FleetService) GetDriver(ctx context.Context, id int64, principal model.Principal) (*model.Driver, error) {
	if !principal.CanActAsDriver(id) {
		return nil, ErrPermissionDenied
	}
	driver, err := s.drivers.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrDriverNotFound)
	}
	return driver, nil
}

type RegisterVehicleInput struct {
	Identifier   string
	Year         int
	Model        string
	LicensePlate string
}

func (s *FleetService) RegisterVehicle(ctx context.Context, input RegisterVehicleInput) (*model.Vehicle, error) {
	vehicle, err := model.NewVehicle(input.Identifier, input.Year, input.Model, input.LicensePlate, s.now())
	if err != nil {
		return nil, invalidInput(err)
	}
	if err := s.vehicles.Add(ctx, vehicle); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateVehicle
		}
		return nil, err
	}
	s.log.Info().Int64("vehicle_id", vehicle.ID).Str("plate", vehicle.LicensePlate).Msg("vehicle registered")
	return vehicle, nil
}

func (s *FleetService) GetVehicle(ctx context.Context, id int64) (*model.Vehicle, error) {
	vehicle, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrVehicleNotFound)
	}
	return vehicle, nil
}

// ListVehicles returns the active fleet. A non-blank plate narrows it to
// that vehicle.
func (s *FleetService) ListVehicles(ctx context.Context, plate string) ([]model.Vehicle, error) {
	return s.vehicles.List(ctx, model.NormalizePlate(plate))
}

func (s *FleetService) UpdateVehiclePlate(ctx context.Context, id int64, plate string) (*model.Vehicle, error) {
	normalized, err := model.ParsePlate(plate)
	if err != nil {
		return nil, invalidInput(err)
	}
	if err := s.vehicles.UpdatePlate(ctx, id, normalized); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrPlateInUse
		}
		return nil, notFound(err, ErrVehicleNotFound)
	}
	s.log.Info().Int64("vehicle_id", id).Str("plate", normalized).Msg("vehicle plate updated")
	return s.GetVehicle(ctx, id)
}

// DeactivateVehicle soft-deletes a vehicle. A rental already running on it
// is left alone; new rentals are refused.
func (s *FleetService) DeactivateVehicle(ctx context.Context, id int64) error {
	if err := s.vehicles.Deactivate(ctx, id); err != nil {
		return notFound(err, ErrVehicleNotFound)
	}
	s.log.Info().Int64("vehicle_id", id).Msg("vehicle deactivated")
	return nil
}
