package storage

import "errors"

var (
	// ErrDuplicate is returned when a unique value (slug, SKU, username)
	// already exists within the tenant.
	ErrDuplicate = errors.New("duplicate value")

	// ErrUnavailable is returned when booking dates overlap an existing
	// blocking booking.
	ErrUnavailable = errors.New("dates not available")

	// ErrConflict is returned when a delete would orphan dependent rows.
	ErrConflict = errors.New("entity has dependents")
)
