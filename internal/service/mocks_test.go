package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nurpe/rentals-service/internal/model"
)

type mockPlanRepo struct{ mock.Mock }

func (m *mockPlanRepo) Add(ctx context.Context, plan *model.RentalPlan) error {
	return m.Called(ctx, plan).Error(0)
}

func (m *mockPlanRepo) AddManyIfEmpty(ctx context.Context, plans []*model.RentalPlan) (bool, error) {
	args := m.Called(ctx, plans)
	return args.Bool(0), args.Error(1)
}

func (m *mockPlanRepo) Update(ctx context.Context, plan *model.RentalPlan) error {
	return m.Called(ctx, plan).Error(0)
}

func (m *mockPlanRepo) GetByID(ctx context.Context, id int64) (*model.RentalPlan, error) {
	args := m.Called(ctx, id)
	if plan, ok := args.Get(0).(*model.RentalPlan); ok {
		return plan, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPlanRepo) GetAll(ctx context.Context) ([]model.RentalPlan, error) {
	args := m.Called(ctx)
	plans, _ := args.Get(0).([]model.RentalPlan)
	return plans, args.Error(1)
}

func (m *mockPlanRepo) GetActive(ctx context.Context) ([]model.RentalPlan, error) {
	args := m.Called(ctx)
	plans, _ := args.Get(0).([]model.RentalPlan)
	return plans, args.Error(1)
}

func (m *mockPlanRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockRentalRepo struct{ mock.Mock }

func (m *mockRentalRepo) Add(ctx context.Context, rental *model.Rental) error {
	return m.Called(ctx, rental).Error(0)
}

func (m *mockRentalRepo) Update(ctx context.Context, rental *model.Rental) error {
	return m.Called(ctx, rental).Error(0)
}

func (m *mockRentalRepo) GetByID(ctx context.Context, id int64) (*model.Rental, error) {
	args := m.Called(ctx, id)
	if rental, ok := args.Get(0).(*model.Rental); ok {
		return rental, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRentalRepo) GetByDriverID(ctx context.Context, driverID int64) ([]model.Rental, error) {
	args := m.Called(ctx, driverID)
	rentals, _ := args.Get(0).([]model.Rental)
	return rentals, args.Error(1)
}

func (m *mockRentalRepo) GetActiveByVehicleID(ctx context.Context, vehicleID int64) (*model.Rental, error) {
	args := m.Called(ctx, vehicleID)
	if rental, ok := args.Get(0).(*model.Rental); ok {
		return rental, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockDriverRepo struct{ mock.Mock }

func (m *mockDriverRepo) Add(ctx context.Context, driver *model.Driver) error {
	return m.Called(ctx, driver).Error(0)
}

func (m *mockDriverRepo) GetByID(ctx context.Context, id int64) (*model.Driver, error) {
	args := m.Called(ctx, id)
	if driver, ok := args.Get(0).(*model.Driver); ok {
		return driver, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockVehicleRepo struct{ mock.Mock }

func (m *mockVehicleRepo) Add(ctx context.Context, vehicle *model.Vehicle) error {
	return m.Called(ctx, vehicle).Error(0)
}

func (m *mockVehicleRepo) GetByID(ctx context.Context, id int64) (*model.Vehicle, error) {
	args := m.Called(ctx, id)
	if vehicle, ok := args.Get(0).(*model.Vehicle); ok {
		return vehicle, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVehicleRepo) List(ctx context.Context, plate string) ([]model.Vehicle, error) {
	args := m.Called(ctx, plate)
	vehicles, _ := args.Get(0).([]model.Vehicle)
	return vehicles, args.Error(1)
}

func (m *mockVehicleRepo) UpdatePlate(ctx context.Context, id int64, plate string) error {
	return m.Called(ctx, id, plate).Error(0)
}

func (m *mockVehicleRepo) Deactivate(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, events []model.RentalEvent) error {
	return m.Called(ctx, events).Error(0)
}
