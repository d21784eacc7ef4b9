package memstore

import (
	"context"

	"github.com/andreamarquez/holbertonschool-hbnb/internal/domain"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/store"
	"github.com/google/uuid"
)

// UserStore implements store.UserStore backed by an in-memory repository.
type UserStore struct {
	repo *repository[domain.User]
}

// Ensure UserStore implements the store.UserStore interface.
var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates a new empty in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{repo: newRepository[domain.User]()}
}

// Create saves a new user. The email uniqueness check and the insert run
// under the repository lock. The transient plaintext password is never
// retained.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	u := *user
	u.Password = ""

	return s.repo.addUnless(u.ID, u, func(existing domain.User) bool {
		return existing.Email == u.Email
	}, store.ErrEmailExists)
}

// GetByID retrieves a user by ID.
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := s.repo.get(id)
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &u, nil
}

// GetByEmail retrieves the first user, in insertion order, whose email is
// an exact match.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, ok := s.repo.getBy(func(existing domain.User) bool {
		return existing.Email == email
	})
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &u, nil
}

// GetAll returns all users in insertion order.
func (s *UserStore) GetAll(ctx context.Context) ([]*domain.User, error) {
	users := s.repo.all()
	out := make([]*domain.User, len(users))
	for i := range users {
		out[i] = &users[i]
	}
	return out, nil
}

// Update replaces the stored user, re-checking email uniqueness against
// every other live user.
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	u := *user
	u.Password = ""

	err := s.repo.replaceUnless(u.ID, u, func(other domain.User) bool {
		return other.Email == u.Email
	}, store.ErrEmailExists)
	if err != nil {
		if store.IsNotFoundError(err) {
			return store.ErrUserNotFound
		}
		return err
	}
	return nil
}

// Delete removes a user by ID.
func (s *UserStore) Delete(ctx context.Context, id uuid.UUID) error {
	if !s.repo.remove(id) {
		return store.ErrUserNotFound
	}
	return nil
}
