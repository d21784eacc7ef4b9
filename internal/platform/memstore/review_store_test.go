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

func newTestReview(t *testing.T, userID, placeID uuid.UUID) *domain.Review {
	t.Helper()

	review, err := domain.NewReview("nice place", 4, placeID, userID)
	require.NoError(t, err)
	return review
}

func TestReviewStoreCreate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()
	placeID := uuid.New()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		s := NewReviewStore()
		review := newTestReview(t, userID, placeID)
		require.NoError(t, s.Create(ctx, review))

		got, err := s.GetByID(ctx, review.ID)
		require.NoError(t, err)
		assert.Equal(t, review.Text, got.Text)
		assert.Equal(t, review.Rating, got.Rating)
	})

	t.Run("one review per user per place", func(t *testing.T) {
		t.Parallel()

		s := NewReviewStore()
		require.NoError(t, s.Create(ctx, newTestReview(t, userID, placeID)))

		err := s.Create(ctx, newTestReview(t, userID, placeID))
		assert.ErrorIs(t, err, store.ErrReviewExists)
		assert.True(t, store.IsDuplicateError(err))

		// Same user, different place is fine.
		require.NoError(t, s.Create(ctx, newTestReview(t, userID, uuid.New())))

		// Different user, same place is fine.
		require.NoError(t, s.Create(ctx, newTestReview(t, uuid.New(), placeID)))
	})
}

func TestReviewStoreGetByPlace(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewReviewStore()

	placeID := uuid.New()
	otherPlaceID := uuid.New()

	first := newTestReview(t, uuid.New(), placeID)
	other := newTestReview(t, uuid.New(), otherPlaceID)
	second := newTestReview(t, uuid.New(), placeID)

	require.NoError(t, s.Create(ctx, first))
	require.NoError(t, s.Create(ctx, other))
	require.NoError(t, s.Create(ctx, second))

	reviews, err := s.GetByPlace(ctx, placeID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, first.ID, reviews[0].ID)
	assert.Equal(t, second.ID, reviews[1].ID)

	// Unknown place yields an empty result, not an error.
	reviews, err = s.GetByPlace(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestReviewStoreGetByUserAndPlace(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewReviewStore()

	userID := uuid.New()
	placeID := uuid.New()
	review := newTestReview(t, userID, placeID)
	require.NoError(t, s.Create(ctx, review))

	got, err := s.GetByUserAndPlace(ctx, userID, placeID)
	require.NoError(t, err)
	assert.Equal(t, review.ID, got.ID)

	_, err = s.GetByUserAndPlace(ctx, userID, uuid.New())
	assert.ErrorIs(t, err, store.ErrReviewNotFound)

	_, err = s.GetByUserAndPlace(ctx, uuid.New(), placeID)
	assert.ErrorIs(t, err, store.ErrReviewNotFound)
}

func TestReviewStoreUpdateAndDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewReviewStore()

	review := newTestReview(t, uuid.New(), uuid.New())
	require.NoError(t, s.Create(ctx, review))

	review.Rating = 1
	require.NoError(t, s.Update(ctx, review))

	got, err := s.GetByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Rating)

	require.NoError(t, s.Delete(ctx, review.ID))

	err = s.Delete(ctx, review.ID)
	assert.ErrorIs(t, err, store.ErrReviewNotFound)

	ghost := newTestReview(t, uuid.New(), uuid.New())
	err = s.Update(ctx, ghost)
	assert.ErrorIs(t, err, store.ErrReviewNotFound)
}
