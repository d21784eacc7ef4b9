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

func TestAmenityStoreCRUD(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewAmenityStore()

	wifi, err := domain.NewAmenity("WiFi")
	require.NoError(t, err)
	pool, err := domain.NewAmenity("Pool")
	require.NoError(t, err)

	require.NoError(t, s.Create(ctx, wifi))
	require.NoError(t, s.Create(ctx, pool))

	got, err := s.GetByID(ctx, wifi.ID)
	require.NoError(t, err)
	assert.Equal(t, "WiFi", got.Name)

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "WiFi", all[0].Name)
	assert.Equal(t, "Pool", all[1].Name)

	got.Name = "Fast WiFi"
	require.NoError(t, s.Update(ctx, got))

	updated, err := s.GetByID(ctx, wifi.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fast WiFi", updated.Name)

	require.NoError(t, s.Delete(ctx, wifi.ID))

	_, err = s.GetByID(ctx, wifi.ID)
	assert.ErrorIs(t, err, store.ErrAmenityNotFound)

	err = s.Delete(ctx, wifi.ID)
	assert.ErrorIs(t, err, store.ErrAmenityNotFound)
}

func TestAmenityStoreUpdateAbsent(t *testing.T) {
	t.Parallel()

	s := NewAmenityStore()

	ghost, err := domain.NewAmenity("Ghost")
	require.NoError(t, err)

	err = s.Update(context.Background(), ghost)
	assert.ErrorIs(t, err, store.ErrAmenityNotFound)
}

func TestAmenityStoreGetUnknownID(t *testing.T) {
	t.Parallel()

	s := NewAmenityStore()
	_, err := s.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrAmenityNotFound)
}
