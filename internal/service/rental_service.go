package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nurpe/rentals-service/internal/config"
	"github.com/nurpe/rentals-service/internal/model"
	"github.com/nurpe/rentals-service/internal/pricing"
	"github.com/nurpe/rentals-service/internal/repository"
)

type RentalService struct {
	rentals  RentalRepository
	plans    PlanRepository
	drivers  DriverRepository
	vehicles VehicleRepository
	events   EventPublisher
	engine   *pricing.Engine
	allowed  []model.LicenseCategory
	log      zerolog.Logger
	now      func() time.Time
}

func NewRentalService(
	rentals RentalRepository,
	plans PlanRepository,
	drivers DriverRepository,
	vehicles VehicleRepository,
	events EventPublisher,
	engine *pricing.Engine,
	cfg *config.Config,
	log zerolog.Logger,
) *RentalService {
	return &RentalService{
		rentals:  rentals,
		plans:    plans,
		drivers:  drivers,
		vehicles: vehicles,
		events:   events,
		engine:   engine,
		allowed:  cfg.Rentals.LicenseCategories,
		log:      log,
		now:      utcNow,
	}
}

type CreateRentalInput struct {
	DriverID  int64
	VehicleID int64
	PlanID    int64
	StartDate time.Time
	Principal model.Principal
}

type CreateRentalResult struct {
	RentalID        int64
	TotalAmount     decimal.Decimal
	ExpectedEndDate time.Time
}

// CreateRental books a vehicle. Preconditions are checked in a fixed order
// and nothing is written until all of them hold.
func (s *RentalService) CreateRental(ctx context.Context, input CreateRentalInput) (*CreateRentalResult, error) {
	if !input.Principal.CanActAsDriver(input.DriverID) {
		return nil, ErrPermissionDenied
	}
	if input.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: start_date is required", ErrInvalidInput)
	}

	driver, err := s.drivers.GetByID(ctx, input.DriverID)
	if err != nil {
		return nil, s.reject(input, notFound(err, ErrDriverNotFound))
	}
	if !driver.HoldsAny(s.allowed) {
		return nil, s.reject(input, ErrIneligibleLicense)
	}

	plan, err := s.plans.GetByID(ctx, input.PlanID)
	if err != nil {
		return nil, s.reject(input, notFound(err, ErrPlanNotFound))
	}
	if !plan.IsActive {
		return nil, s.reject(input, ErrPlanInactive)
	}

	vehicle, err := s.vehicles.GetByID(ctx, input.VehicleID)
	if err != nil {
		return nil, s.reject(input, notFound(err, ErrVehicleNotFound))
	}
	if !vehicle.IsActive {
		return nil, s.reject(input, ErrVehicleInactive)
	}

	if _, err := s.rentals.GetActiveByVehicleID(ctx, vehicle.ID); err == nil {
		return nil, s.reject(input, ErrVehicleAlreadyRented)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := s.now()
	start := model.DateOnly(input.StartDate)
	if !start.After(model.DateOnly(now)) {
		return nil, s.reject(input, ErrStartDateNotFuture)
	}

	expectedEnd := start.AddDate(0, 0, plan.DurationDays)
	total := s.engine.CalculateTotalAmount(*plan, start, expectedEnd)

	rental, err := model.NewRental(driver.ID, vehicle.ID, plan.ID, start, expectedEnd, total, now)
	if err != nil {
		return nil, invalidInput(err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.rentals.Add(ctx, rental); err != nil {
		if errors.Is(err, repository.ErrActiveRentalExists) {
			return nil, s.reject(input, ErrVehicleAlreadyRented)
		}
		return nil, err
	}

	s.log.Info().
		Int64("rental_id", rental.ID).
		Int64("driver_id", rental.DriverID).
		Int64("vehicle_id", rental.VehicleID).
		Int64("plan_id", rental.PlanID).
		Str("total_amount", rental.TotalAmount.StringFixed(2)).
		Msg("rental created")
	s.publish(ctx, rental.Opened())

	return &CreateRentalResult{
		RentalID:        rental.ID,
		TotalAmount:     rental.TotalAmount,
		ExpectedEndDate: rental.ExpectedEndDate,
	}, nil
}

type ReturnRentalInput struct {
	RentalID         int64
	ActualReturnDate time.Time
	Principal        model.Principal
}

type ReturnRentalResult struct {
	RentalID         int64
	FinalAmount      decimal.Decimal
	ActualReturnDate time.Time
	Breakdown        pricing.Breakdown
}

// ReturnRental closes an Active rental, charging it against the plan's
// current terms.
func (s *RentalService) ReturnRental(ctx context.Context, input ReturnRentalInput) (*ReturnRentalResult, error) {
	if input.ActualReturnDate.IsZero() {
		return nil, fmt.Errorf("%w: actual_return_date is required", ErrInvalidInput)
	}

	rental, err := s.loadOwned(ctx, input.RentalID, input.Principal)
	if err != nil {
		return nil, err
	}
	if !rental.IsActive() {
		return nil, ErrRentalNotActive
	}
	returned := model.DateOnly(input.ActualReturnDate)
	if returned.Before(rental.StartDate) {
		return nil, fmt.Errorf("%w: return date cannot be before start date", ErrInvalidInput)
	}

	plan, err := s.plans.GetByID(ctx, rental.PlanID)
	if err != nil {
		return nil, notFound(err, ErrPlanNotFound)
	}

	breakdown := s.engine.Breakdown(*plan, rental.StartDate, rental.ExpectedEndDate, returned)
	events, err := rental.Return(returned, breakdown.Total, s.now())
	if err != nil {
		return nil, s.transitionError(err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.rentals.Update(ctx, rental); err != nil {
		if errors.Is(err, repository.ErrStaleRental) {
			return nil, ErrRentalNotActive
		}
		return nil, err
	}

	s.log.Info().
		Int64("rental_id", rental.ID).
		Str("return_kind", string(breakdown.Kind)).
		Str("final_amount", breakdown.Total.StringFixed(2)).
		Msg("rental returned")
	s.publish(ctx, events)

	return &ReturnRentalResult{
		RentalID:         rental.ID,
		FinalAmount:      breakdown.Total,
		ActualReturnDate: returned,
		Breakdown:        breakdown,
	}, nil
}

func (s *RentalService) CancelRental(ctx context.Context, rentalID int64, principal model.Principal) (*model.Rental, error) {
	rental, err := s.loadOwned(ctx, rentalID, principal)
	if err != nil {
		return nil, err
	}
	events, err := rental.Cancel(s.now())
	if err != nil {
		return nil, s.transitionError(err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.rentals.Update(ctx, rental); err != nil {
		if errors.Is(err, repository.ErrStaleRental) {
			return nil, ErrRentalNotActive
		}
		return nil, err
	}

	s.log.Info().Int64("rental_id", rental.ID).Msg("rental cancelled")
	s.publish(ctx, events)
	return rental, nil
}

func (s *RentalService) GetRental(ctx context.Context, rentalID int64, principal model.Principal) (*model.Rental, error) {
	return s.loadOwned(ctx, rentalID, principal)
}

func (s *RentalService) ListDriverRentals(ctx context.Context, driverID int64, principal model.Principal) ([]model.Rental, error) {
	if !principal.CanActAsDriver(driverID) {
		return nil, ErrPermissionDenied
	}
	if _, err := s.drivers.GetByID(ctx, driverID); err != nil {
		return nil, notFound(err, ErrDriverNotFound)
	}
	return s.rentals.GetByDriverID(ctx, driverID)
}

type QuoteResult struct {
	PlanID    int64
	PlanName  string
	DailyRate decimal.Decimal
	Days      int
	Total     decimal.Decimal
}

// QuoteTotal previews the booking charge without reserving anything.
func (s *RentalService) QuoteTotal(ctx context.Context, planID int64, start, end time.Time) (*QuoteResult, error) {
	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("%w: start and end dates are required", ErrInvalidInput)
	}
	if model.DateOnly(end).Before(model.DateOnly(start)) {
		return nil, fmt.Errorf("%w: end date cannot be before start date", ErrInvalidInput)
	}

	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, notFound(err, ErrPlanNotFound)
	}

	return &QuoteResult{
		PlanID:    plan.ID,
		PlanName:  plan.Name,
		DailyRate: plan.DailyRate,
		Days:      pricing.DaysBetween(start, end),
		Total:     s.engine.CalculateTotalAmount(*plan, start, end),
	}, nil
}

func (s *RentalService) loadOwned(ctx context.Context, rentalID int64, principal model.Principal) (*model.Rental, error) {
	rental, err := s.rentals.GetByID(ctx, rentalID)
	if err != nil {
		return nil, notFound(err, ErrRentalNotFound)
	}
	if !principal.CanActAsDriver(rental.DriverID) {
		return nil, ErrPermissionDenied
	}
	return rental, nil
}

func (s *RentalService) transitionError(err error) error {
	if errors.Is(err, model.ErrRentalNotActive) {
		return ErrRentalNotActive
	}
	return invalidInput(err)
}

func (s *RentalService) reject(input CreateRentalInput, err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) || errors.Is(err, ErrInvalidInput) {
		s.log.Warn().
			Int64("driver_id", input.DriverID).
			Int64("vehicle_id", input.VehicleID).
			Int64("plan_id", input.PlanID).
			Str("reason", err.Error()).
			Msg("rental rejected")
	}
	return err
}

// publish runs after the write has committed, so it ignores cancellation of
// the request context. Failures are logged; the transition already happened.
func (s *RentalService) publish(ctx context.Context, events []model.RentalEvent) {
	if len(events) == 0 || s.events == nil {
		return
	}
	if err := s.events.Publish(context.WithoutCancel(ctx), events); err != nil {
		s.log.Error().Err(err).Int64("rental_id", events[0].RentalID).Msg("publish rental events failed")
	}
}
