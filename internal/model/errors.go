package model

import "errors"

var ErrRentalNotActive = errors.New("rental not active")

// ValidationError reports an attribute that breaks an entity invariant.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
