package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nurpe/rentals-service/internal/db"
	"github.com/nurpe/rentals-service/internal/model"
)

var testNow = time.Date(2023, 12, 20, 9, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(database))
	return database
}

func seedPlan(t *testing.T, database *gorm.DB) *model.RentalPlan {
	t.Helper()
	plan, err := model.NewRentalPlan(model.DefaultPlanTerms()[0], testNow)
	require.NoError(t, err)
	require.NoError(t, NewPlanRepository(database).Add(context.Background(), plan))
	return plan
}

func seedDriver(t *testing.T, database *gorm.DB, licenseNumber string) *model.Driver {
	t.Helper()
	driver, err := model.NewDriver("drv-"+licenseNumber, "Ana Souza", licenseNumber, "A", testNow)
	require.NoError(t, err)
	require.NoError(t, NewDriverRepository(database).Add(context.Background(), driver))
	return driver
}

func seedVehicle(t *testing.T, database *gorm.DB, plate string) *model.Vehicle {
	t.Helper()
	vehicle, err := model.NewVehicle("moto-"+plate, 2024, "Mottu Sport", plate, testNow)
	require.NoError(t, err)
	require.NoError(t, NewVehicleRepository(database).Add(context.Background(), vehicle))
	return vehicle
}

func newRental(t *testing.T, driverID, vehicleID, planID int64) *model.Rental {
	t.Helper()
	rental, err := model.NewRental(driverID, vehicleID, planID,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		decimal.RequireFromString("210.00"), testNow)
	require.NoError(t, err)
	return rental
}
