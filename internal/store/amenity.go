package store

import (
	"context"

	"github.com/andreamarquez/holbertonschool-hbnb/internal/domain"
	"github.com/google/uuid"
)

// AmenityStore defines the interface for amenity data persistence.
type AmenityStore interface {
	// Create saves a new amenity to the store.
	// Returns ErrDuplicate if the ID is already present.
	Create(ctx context.Context, amenity *domain.Amenity) error

	// GetByID retrieves an amenity by its unique ID.
	// Returns ErrAmenityNotFound if the amenity does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Amenity, error)

	// GetAll returns all amenities in insertion order.
	GetAll(ctx context.Context) ([]*domain.Amenity, error)

	// Update replaces the stored amenity with the given value.
	// Returns ErrAmenityNotFound if the amenity does not exist.
	Update(ctx context.Context, amenity *domain.Amenity) error

	// Delete removes an amenity from the store by its ID.
	// Returns ErrAmenityNotFound if the amenity does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
