package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nurpe/rentals-service/internal/model"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidInput     = errors.New("invalid input")
	ErrConflict         = errors.New("conflict")
)

var (
	ErrDriverNotFound  = fmt.Errorf("%w: driver", ErrNotFound)
	ErrVehicleNotFound = fmt.Errorf("%w: vehicle", ErrNotFound)
	ErrPlanNotFound    = fmt.Errorf("%w: plan", ErrNotFound)
	ErrRentalNotFound  = fmt.Errorf("%w: rental", ErrNotFound)

	ErrIneligibleLicense    = fmt.Errorf("%w: driver license category is not eligible", ErrConflict)
	ErrPlanInactive         = fmt.Errorf("%w: plan is inactive", ErrConflict)
	ErrVehicleInactive      = fmt.Errorf("%w: vehicle is inactive", ErrConflict)
	ErrVehicleAlreadyRented = fmt.Errorf("%w: vehicle already rented", ErrConflict)
	ErrRentalNotActive      = fmt.Errorf("%w: rental not active", ErrConflict)
	ErrDuplicateDriver      = fmt.Errorf("%w: driver already registered", ErrConflict)
	ErrDuplicateVehicle     = fmt.Errorf("%w: vehicle already registered", ErrConflict)
	ErrPlateInUse           = fmt.Errorf("%w: license plate already in use", ErrConflict)

	ErrStartDateNotFuture = fmt.Errorf("%w: start date must be after today", ErrInvalidInput)
)

// invalidInput converts entity validation failures into ErrInvalidInput and
// passes anything else through.
func invalidInput(err error) error {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		return fmt.Errorf("%w: %s", ErrInvalidInput, verr.Reason)
	}
	return err
}

// notFound maps a missing row to target.
func notFound(err, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}
