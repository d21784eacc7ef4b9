package store

import (
	"context"

	"github.com/andreamarquez/holbertonschool-hbnb/internal/domain"
	"github.com/google/uuid"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// hashed password. Returns ErrEmailExists if the email is already taken
	// and ErrDuplicate if the ID is already present.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address using a
	// case-sensitive exact match. Returns ErrUserNotFound if no user with
	// that email exists.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetAll returns all users in insertion order.
	GetAll(ctx context.Context) ([]*domain.User, error)

	// Update replaces the stored user with the given value.
	// Returns ErrUserNotFound if the user does not exist and ErrEmailExists
	// if the new email collides with another live user.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist, which makes a
	// second delete of the same ID report not-found rather than succeed.
	Delete(ctx context.Context, id uuid.UUID) error
}
