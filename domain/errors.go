package domain

import "errors"

var (
	// ErrDuplicateKey is returned when a room or guest is added under an
	// identifier that is already registered.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound is returned when a guest, room or reservation reference
	// cannot be resolved.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a reservation cannot be made because the
	// room is occupied or the requested dates overlap an existing stay.
	ErrConflict = errors.New("conflict")

	// ErrInvalidState is returned when check-in or check-out is called out of
	// sequence.
	ErrInvalidState = errors.New("invalid state")

	// ErrValidation is returned when operation input is rejected before it
	// reaches the model, such as a stay with check-out on or before check-in
	// or a negative nightly rate.
	ErrValidation = errors.New("validation failed")
)
