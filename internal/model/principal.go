package model

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleDriver Role = "DRIVER"
)

// Principal is the authenticated caller extracted from an access token.
type Principal struct {
	UserID   int64
	Role     Role
	DriverID *int64
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func (p Principal) IsDriver() bool {
	return p.Role == RoleDriver
}

// CanActAsDriver reports whether the caller may operate on driverID's behalf.
func (p Principal) CanActAsDriver(driverID int64) bool {
	if p.IsAdmin() {
		return true
	}
	return p.IsDriver() && p.DriverID != nil && *p.DriverID == driverID
}
