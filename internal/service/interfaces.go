package service

import (
	"context"

	"github.com/nurpe/rentals-service/internal/model"
)

type PlanRepository interface {
	Add(ctx context.Context, plan *model.RentalPlan) error
	AddManyIfEmpty(ctx context.Context, plans []*model.RentalPlan) (bool, error)
	Update(ctx context.Context, plan *model.RentalPlan) error
	GetByID(ctx context.Context, id int64) (*model.RentalPlan, error)
	GetAll(ctx context.Context) ([]model.RentalPlan, error)
	GetActive(ctx context.Context) ([]model.RentalPlan, error)
	Count(ctx context.Context) (int64, error)
}

type RentalRepository interface {
	Add(ctx context.Context, rental *model.Rental) error
	Update(ctx context.Context, rental *model.Rental) error
	GetByID(ctx context.Context, id int64) (*model.Rental, error)
	GetByDriverID(ctx context.Context, driverID int64) ([]model.Rental, error)
	GetActiveByVehicleID(ctx context.Context, vehicleID int64) (*model.Rental, error)
}

type DriverRepository interface {
	Add(ctx context.Context, driver *model.Driver) error
	GetByID(ctx context.Context, id int64) (*model.Driver, error)
}

type VehicleRepository interface {
	Add(ctx context.Context, vehicle *model.Vehicle) error
	GetByID(ctx context.Context, id int64) (*model.Vehicle, error)
	List(ctx context.Context, plate string) ([]model.Vehicle, error)
	UpdatePlate(ctx context.Context, id int64, plate string) error
	Deactivate(ctx context.Context, id int64) error
}

// EventPublisher receives the events produced by rental transitions after
// they are persisted.
type EventPublisher interface {
	Publish(ctx context.Context, events []model.RentalEvent) error
}

type EventStore interface {
	Append(ctx context.Context, events []model.RentalEvent) error
}

type PDFGenerator interface {
	Receipt(doc model.ReceiptDocument) ([]byte, error)
}

type ExcelGenerator interface {
	PlanCatalog(plans []model.RentalPlan) ([]byte, error)
	DriverStatement(statement model.DriverStatement) ([]byte, error)
}
