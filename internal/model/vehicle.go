package model

import (
	"regexp"
	"strings"
	"time"
)

// Mercosul (ABC1D23) or the older ABC1234 layout.
var platePattern = regexp.MustCompile(`^[A-Z]{3}[0-9]([A-Z][0-9]{2}|[0-9]{3})$`)

type Vehicle struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Identifier   string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Year         int       `gorm:"not null"`
	Model        string    `gorm:"type:varchar(120);not null"`
	LicensePlate string    `gorm:"type:varchar(16);not null;uniqueIndex"`
	IsActive     bool      `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (Vehicle) TableName() string { return "vehicles" }

func NewVehicle(identifier string, year int, modelName, plate string, now time.Time) (*Vehicle, error) {
	identifier = strings.TrimSpace(identifier)
	modelName = strings.TrimSpace(modelName)
	switch {
	case identifier == "":
		return nil, invalid("identifier", "vehicle identifier is required")
	case year <= 0:
		return nil, invalid("year", "year must be greater than zero")
	case modelName == "":
		return nil, invalid("model", "vehicle model is required")
	}
	plate, err := ParsePlate(plate)
	if err != nil {
		return nil, err
	}
	return &Vehicle{
		Identifier:   identifier,
		Year:         year,
		Model:        modelName,
		LicensePlate: plate,
		IsActive:     true,
		CreatedAt:    now.UTC(),
	}, nil
}

// ParsePlate normalizes plate and checks its layout.
func ParsePlate(plate string) (string, error) {
	plate = NormalizePlate(plate)
	if !platePattern.MatchString(plate) {
		return "", invalid("license_plate", "license plate must look like ABC1D23 or ABC1234")
	}
	return plate, nil
}

func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(plate), " ", ""))
}

// Deactivate soft-deletes the vehicle; inactive vehicles cannot be rented.
func (v *Vehicle) Deactivate() {
	v.IsActive = false
}
