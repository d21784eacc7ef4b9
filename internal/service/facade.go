package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/andreamarquez/holbertonschool-hbnb/internal/domain"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/service/auth"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/store"
	"github.com/google/uuid"
)

// Facade orchestrates all entity operations across the four stores. It is
// created once at startup and injected into every handler; there are no
// package-level singletons.
type Facade struct {
	users     store.UserStore
	places    store.PlaceStore
	amenities store.AmenityStore
	reviews   store.ReviewStore
	hasher    auth.PasswordHasher
	verifier  auth.PasswordVerifier
	logger    *slog.Logger
}

// NewFacade creates a Facade over the given stores and password
// capabilities.
func NewFacade(
	users store.UserStore,
	places store.PlaceStore,
	amenities store.AmenityStore,
	reviews store.ReviewStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	logger *slog.Logger,
) *Facade {
	if logger == nil {
		logger = slog.Default()
	}

	return &Facade{
		users:     users,
		places:    places,
		amenities: amenities,
		reviews:   reviews,
		hasher:    hasher,
		verifier:  verifier,
		logger:    logger.With("component", "facade"),
	}
}

// ----- User operations -----

// CreateUser registers a new user, hashing the supplied plaintext
// password. Returns store.ErrEmailExists if the email is already
// registered (case-sensitive exact match).
func (f *Facade) CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	user, err := domain.NewUser(in.FirstName, in.LastName, in.Email, in.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	digest, err := f.hasher.Hash(user.Password)
	if err != nil {
		f.logger.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = digest
	user.Password = ""

	if err := f.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			f.logger.Debug("attempted to create user with existing email", "email", in.Email)
		} else {
			f.logger.Error("failed to save user", "error", err, "email", in.Email)
		}
		return nil, err
	}

	f.logger.Info("user created", "user_id", user.ID)
	return user, nil
}

// GetUser retrieves a user by ID.
func (f *Facade) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return f.users.GetByID(ctx, id)
}

// GetUserByEmail retrieves a user by their email address.
func (f *Facade) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return f.users.GetByEmail(ctx, email)
}

// GetAllUsers returns all users in insertion order. Password digests are
// never serialized; the domain type excludes them from every output
// representation.
func (f *Facade) GetAllUsers(ctx context.Context) ([]*domain.User, error) {
	return f.users.GetAll(ctx)
}

// UpdateUser applies the patch to the stored user field-by-field and
// refreshes the update timestamp. Changing the email re-checks uniqueness
// and fails with store.ErrEmailExists on collision. Returns
// store.ErrUserNotFound for an absent ID; an update never creates an
// entity.
func (f *Facade) UpdateUser(ctx context.Context, id uuid.UUID, patch UserPatch) (*domain.User, error) {
	user, err := f.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Password != nil {
		user.Password = *patch.Password
	}

	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	if patch.Password != nil {
		digest, err := f.hasher.Hash(*patch.Password)
		if err != nil {
			f.logger.Error("failed to hash password", "error", err, "user_id", id)
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.HashedPassword = digest
		user.Password = ""
	}

	user.UpdatedAt = time.Now().UTC()

	if err := f.users.Update(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			f.logger.Debug("attempted to update to an existing email", "user_id", id)
		} else {
			f.logger.Error("failed to update user", "error", err, "user_id", id)
		}
		return nil, err
	}

	f.logger.Info("user updated", "user_id", id)
	return user, nil
}

// DeleteUser removes a user by ID. Places owned by the user and reviews
// written by them are not cascade-deleted; cross-references are weak.
// A second delete of the same ID returns store.ErrUserNotFound.
func (f *Facade) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := f.users.Delete(ctx, id); err != nil {
		return err
	}
	f.logger.Info("user deleted", "user_id", id)
	return nil
}

// Authenticate verifies the given credentials and returns the matching
// user. Unknown email and wrong password both yield ErrInvalidCredentials;
// the two cases are intentionally indistinguishable to the caller.
func (f *Facade) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := f.users.GetByEmail(ctx, email)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := f.verifier.Compare(user.HashedPassword, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// ----- Amenity operations -----

// CreateAmenity registers a new amenity. An empty name fails validation.
func (f *Facade) CreateAmenity(ctx context.Context, name string) (*domain.Amenity, error) {
	amenity, err := domain.NewAmenity(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	if err := f.amenities.Create(ctx, amenity); err != nil {
		f.logger.Error("failed to save amenity", "error", err)
		return nil, err
	}

	f.logger.Info("amenity created", "amenity_id", amenity.ID, "name", name)
	return amenity, nil
}

// GetAmenity retrieves an amenity by ID.
func (f *Facade) GetAmenity(ctx context.Context, id uuid.UUID) (*domain.Amenity, error) {
	return f.amenities.GetByID(ctx, id)
}

// GetAllAmenities returns all amenities in insertion order.
func (f *Facade) GetAllAmenities(ctx context.Context) ([]*domain.Amenity, error) {
	return f.amenities.GetAll(ctx)
}

// UpdateAmenity applies the patch to the stored amenity and refreshes the
// update timestamp. Returns store.ErrAmenityNotFound for an absent ID.
func (f *Facade) UpdateAmenity(ctx context.Context, id uuid.UUID, patch AmenityPatch) (*domain.Amenity, error) {
	amenity, err := f.amenities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		amenity.Name = *patch.Name
	}

	if err := amenity.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	amenity.UpdatedAt = time.Now().UTC()

	if err := f.amenities.Update(ctx, amenity); err != nil {
		return nil, err
	}

	f.logger.Info("amenity updated", "amenity_id", id)
	return amenity, nil
}

// DeleteAmenity removes an amenity by ID. Places referencing it keep the
// dangling ID; resolution happens at read time.
func (f *Facade) DeleteAmenity(ctx context.Context, id uuid.UUID) error {
	if err := f.amenities.Delete(ctx, id); err != nil {
		return err
	}
	f.logger.Info("amenity deleted", "amenity_id", id)
	return nil
}
