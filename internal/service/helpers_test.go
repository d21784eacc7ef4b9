package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/andreamarquez/holbertonschool-hbnb/internal/domain"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/platform/memstore"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/service/auth"
)

// newTestFacade builds a facade over fresh in-memory stores with the
// cheapest bcrypt cost so password tests stay fast.
func newTestFacade(t *testing.T) *Facade {
	t.Helper()

	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewFacade(
		memstore.NewUserStore(),
		memstore.NewPlaceStore(),
		memstore.NewAmenityStore(),
		memstore.NewReviewStore(),
		hasher,
		hasher,
		logger,
	)
}

// mustCreateUser registers a user through the facade.
func mustCreateUser(t *testing.T, f *Facade, email string) *domain.User {
	t.Helper()

	user, err := f.CreateUser(context.Background(), CreateUserInput{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  "password123",
	})
	require.NoError(t, err)
	return user
}

// mustCreatePlace lists a place owned by the given user.
func mustCreatePlace(t *testing.T, f *Facade, owner *domain.User) *domain.Place {
	t.Helper()

	place, err := f.CreatePlace(context.Background(), CreatePlaceInput{
		Title:       "Test Place",
		Description: "somewhere nice",
		Price:       80,
		Latitude:    45,
		Longitude:   7,
		OwnerID:     owner.ID,
	})
	require.NoError(t, err)
	return place
}

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
