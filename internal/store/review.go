package store

import (
	"context"

	"github.com/andreamarquez/holbertonschool-hbnb/internal/domain"
	"github.com/google/uuid"
)

// ReviewStore defines the interface for review data persistence.
type ReviewStore interface {
	// Create saves a new review to the store.
	// Returns ErrReviewExists if the (user, place) pair already has a
	// review and ErrDuplicate if the ID is already present.
	Create(ctx context.Context, review *domain.Review) error

	// GetByID retrieves a review by its unique ID.
	// Returns ErrReviewNotFound if the review does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)

	// GetAll returns all reviews in insertion order.
	GetAll(ctx context.Context) ([]*domain.Review, error)

	// GetByPlace returns all reviews of the given place in insertion order.
	// An unknown place yields an empty slice, not an error.
	GetByPlace(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error)

	// GetByUserAndPlace returns the review the given user wrote for the
	// given place. Returns ErrReviewNotFound if no such review exists.
	GetByUserAndPlace(ctx context.Context, userID, placeID uuid.UUID) (*domain.Review, error)

	// Update replaces the stored review with the given value.
	// Returns ErrReviewNotFound if the review does not exist.
	Update(ctx context.Context, review *domain.Review) error

	// Delete removes a review from the store by its ID.
	// Returns ErrReviewNotFound if the review does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
