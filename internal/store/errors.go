package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors (e.g., ErrUserNotFound, ErrPlaceNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrPlaceNotFound indicates that the requested place does not exist.
	ErrPlaceNotFound = fmt.Errorf("%w: place", ErrNotFound)

	// ErrAmenityNotFound indicates that the requested amenity does not exist.
	ErrAmenityNotFound = fmt.Errorf("%w: amenity", ErrNotFound)

	// ErrReviewNotFound indicates that the requested review does not exist.
	ErrReviewNotFound = fmt.Errorf("%w: review", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that a user with the given email already
	// exists. Email uniqueness is case-sensitive exact match.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrReviewExists indicates that the user has already reviewed the
	// place. At most one review may exist per (user, place) pair.
	ErrReviewExists = fmt.Errorf("%w: review", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
