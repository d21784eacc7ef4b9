package store

import (
	"context"

	"github.com/andreamarquez/holbertonschool-hbnb/internal/domain"
	"github.com/google/uuid"
)

// PlaceStore defines the interface for place data persistence.
type PlaceStore interface {
	// Create saves a new place to the store.
	// Returns ErrDuplicate if the ID is already present.
	Create(ctx context.Context, place *domain.Place) error

	// GetByID retrieves a place by its unique ID.
	// Returns ErrPlaceNotFound if the place does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error)

	// GetAll returns all places in insertion order.
	GetAll(ctx context.Context) ([]*domain.Place, error)

	// Update replaces the stored place with the given value.
	// Returns ErrPlaceNotFound if the place does not exist.
	Update(ctx context.Context, place *domain.Place) error

	// Delete removes a place from the store by its ID. Reviews of the
	// place are left in place; cross-entity references are weak.
	// Returns ErrPlaceNotFound if the place does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
