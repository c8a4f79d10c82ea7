package model

import (
	"strings"
	"time"
)

type LicenseCategory string

const (
	LicenseCategoryA  LicenseCategory = "A"
	LicenseCategoryB  LicenseCategory = "B"
	LicenseCategoryAB LicenseCategory = "AB"
)

// ParseLicenseCategory accepts "A", "B", "AB" and the "A+B" spelling.
func ParseLicenseCategory(raw string) (LicenseCategory, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "A":
		return LicenseCategoryA, nil
	case "B":
		return LicenseCategoryB, nil
	case "AB", "A+B":
		return LicenseCategoryAB, nil
	}
	return "", invalid("license_category", "license category must be A, B, AB or A+B")
}

type Driver struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	Identifier      string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name            string          `gorm:"type:varchar(160);not null"`
	LicenseNumber   string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	LicenseCategory LicenseCategory `gorm:"type:varchar(4);not null"`
	CreatedAt       time.Time       `gorm:"not null"`
}

func (Driver) TableName() string { return "drivers" }

func NewDriver(identifier, name, licenseNumber, category string, now time.Time) (*Driver, error) {
	identifier = strings.TrimSpace(identifier)
	name = strings.TrimSpace(name)
	licenseNumber = strings.TrimSpace(licenseNumber)
	switch {
	case identifier == "":
		return nil, invalid("identifier", "driver identifier is required")
	case name == "":
		return nil, invalid("name", "driver name is required")
	case licenseNumber == "":
		return nil, invalid("license_number", "license number is required")
	}
	parsed, err := ParseLicenseCategory(category)
	if err != nil {
		return nil, err
	}
	return &Driver{
		Identifier:      identifier,
		Name:            name,
		LicenseNumber:   licenseNumber,
		LicenseCategory: parsed,
		CreatedAt:       now.UTC(),
	}, nil
}

// HoldsAny reports whether the driver's license category is in allowed.
func (d *Driver) HoldsAny(allowed []LicenseCategory) bool {
	for _, category := range allowed {
		if d.LicenseCategory == category {
			return true
		}
	}
	return false
}
