package memstore

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreamarquez/holbertonschool-hbnb/internal/domain"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/store"
)

func newTestUser(t *testing.T, email string) *domain.User {
	t.Helper()

	user, err := domain.NewUser("Test", "User", email, "password123")
	require.NoError(t, err)
	return user
}

func TestUserStoreCreate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		s := NewUserStore()
		user := newTestUser(t, "alice@example.com")
		user.HashedPassword = "digest"

		require.NoError(t, s.Create(ctx, user))

		got, err := s.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, "alice@example.com", got.Email)
		assert.Equal(t, "digest", got.HashedPassword)
	})

	t.Run("plaintext password is not retained", func(t *testing.T) {
		t.Parallel()

		s := NewUserStore()
		user := newTestUser(t, "alice@example.com")
		user.HashedPassword = "digest"

		require.NoError(t, s.Create(ctx, user))

		got, err := s.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Password)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		t.Parallel()

		s := NewUserStore()
		require.NoError(t, s.Create(ctx, newTestUser(t, "alice@example.com")))

		err := s.Create(ctx, newTestUser(t, "alice@example.com"))
		assert.ErrorIs(t, err, store.ErrEmailExists)
		assert.True(t, store.IsDuplicateError(err))
	})

	t.Run("email comparison is exact", func(t *testing.T) {
		t.Parallel()

		// Differently-cased emails are distinct identities.
		s := NewUserStore()
		require.NoError(t, s.Create(ctx, newTestUser(t, "alice@example.com")))
		require.NoError(t, s.Create(ctx, newTestUser(t, "Alice@example.com")))
	})
}

func TestUserStoreGetByEmail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewUserStore()

	alice := newTestUser(t, "alice@example.com")
	require.NoError(t, s.Create(ctx, alice))

	got, err := s.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)

	_, err = s.GetByEmail(ctx, "ALICE@example.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	_, err = s.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserStoreGetAllOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewUserStore()

	emails := []string{"a@example.com", "b@example.com", "c@example.com"}
	for _, email := range emails {
		require.NoError(t, s.Create(ctx, newTestUser(t, email)))
	}

	users, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, len(emails))

	for i, u := range users {
		assert.Equal(t, emails[i], u.Email)
	}
}

func TestUserStoreUpdate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("updates stored fields", func(t *testing.T) {
		t.Parallel()

		s := NewUserStore()
		user := newTestUser(t, "alice@example.com")
		require.NoError(t, s.Create(ctx, user))

		user.FirstName = "Alicia"
		require.NoError(t, s.Update(ctx, user))

		got, err := s.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alicia", got.FirstName)
	})

	t.Run("absent ID is not created", func(t *testing.T) {
		t.Parallel()

		s := NewUserStore()
		ghost := newTestUser(t, "ghost@example.com")

		err := s.Update(ctx, ghost)
		assert.ErrorIs(t, err, store.ErrUserNotFound)

		users, err := s.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("email collision is rejected", func(t *testing.T) {
		t.Parallel()

		s := NewUserStore()
		alice := newTestUser(t, "alice@example.com")
		bob := newTestUser(t, "bob@example.com")
		require.NoError(t, s.Create(ctx, alice))
		require.NoError(t, s.Create(ctx, bob))

		bob.Email = "alice@example.com"
		err := s.Update(ctx, bob)
		assert.ErrorIs(t, err, store.ErrEmailExists)

		// The stored entity is unchanged.
		got, err := s.GetByID(ctx, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", got.Email)
	})

	t.Run("keeping own email is not a collision", func(t *testing.T) {
		t.Parallel()

		s := NewUserStore()
		alice := newTestUser(t, "alice@example.com")
		require.NoError(t, s.Create(ctx, alice))

		alice.LastName = "Jones"
		require.NoError(t, s.Update(ctx, alice))
	})
}

func TestUserStoreDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewUserStore()

	user := newTestUser(t, "alice@example.com")
	require.NoError(t, s.Create(ctx, user))

	require.NoError(t, s.Delete(ctx, user.ID))

	_, err := s.GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	// A second delete of the same ID reports not-found.
	err = s.Delete(ctx, user.ID)
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	// Deleting frees the email for reuse.
	require.NoError(t, s.Create(ctx, newTestUser(t, "alice@example.com")))
}

func TestUserStoreDeleteUnknownID(t *testing.T) {
	t.Parallel()

	s := NewUserStore()
	err := s.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
