package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLicenseCategory(t *testing.T) {
	tests := []struct {
		raw      string
		expected LicenseCategory
		wantErr  bool
	}{
		{"A", LicenseCategoryA, false},
		{" b ", LicenseCategoryB, false},
		{"AB", LicenseCategoryAB, false},
		{"A+B", LicenseCategoryAB, false},
		{"C", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			category, err := ParseLicenseCategory(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, category)
		})
	}
}

func TestDriver_HoldsAny(t *testing.T) {
	allowed := []LicenseCategory{LicenseCategoryA, LicenseCategoryAB}

	for category, expected := range map[string]bool{"A": true, "AB": true, "A+B": true, "B": false} {
		driver, err := NewDriver("drv-1", "Ana", "123456", category, time.Now())
		require.NoError(t, err)
		assert.Equal(t, expected, driver.HoldsAny(allowed), category)
	}
}

func TestNewVehicle(t *testing.T) {
	vehicle, err := NewVehicle("moto-1", 2024, "Mottu Sport", "abc 1d23", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "ABC1D23", vehicle.LicensePlate)
	assert.True(t, vehicle.IsActive)

	_, err = NewVehicle("moto-2", 2020, "CG 160", "ABC1234", time.Now())
	assert.NoError(t, err)

	_, err = NewVehicle("moto-3", 2020, "CG 160", "AB12345", time.Now())
	assert.Error(t, err)
	_, err = NewVehicle("moto-4", 0, "CG 160", "ABC1234", time.Now())
	assert.Error(t, err)

	vehicle.Deactivate()
	assert.False(t, vehicle.IsActive)
}

func TestParsePlate(t *testing.T) {
	plate, err := ParsePlate(" xyz 9a87 ")
	require.NoError(t, err)
	assert.Equal(t, "XYZ9A87", plate)

	_, err = ParsePlate("XYZ-9A87")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "license_plate", verr.Field)
}

func TestPrincipal_CanActAsDriver(t *testing.T) {
	driverID := int64(7)
	admin := Principal{UserID: 1, Role: RoleAdmin}
	driver := Principal{UserID: 2, Role: RoleDriver, DriverID: &driverID}
	orphan := Principal{UserID: 3, Role: RoleDriver}

	assert.True(t, admin.CanActAsDriver(99))
	assert.True(t, driver.CanActAsDriver(7))
	assert.False(t, driver.CanActAsDriver(8))
	assert.False(t, orphan.CanActAsDriver(7))
}
