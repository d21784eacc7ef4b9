package service

import (
	"context"
	"fmt"
	"time"

	"github.com/andreamarquez/holbertonschool-hbnb/internal/domain"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/store"
	"github.com/google/uuid"
)

// CreateReview posts a new review on behalf of the authenticated caller.
// The review's user and place must resolve to existing entities. Two
// authorization rules apply, both keyed on the caller identity recovered
// from the token:
//   - the caller must not own the place (ErrOwnerReview);
//   - the caller must not already have a review for the place
//     (store.ErrReviewExists).
//
// Nothing is persisted unless every check passes.
func (f *Facade) CreateReview(ctx context.Context, callerID uuid.UUID, in CreateReviewInput) (*domain.Review, error) {
	if _, err := f.users.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	place, err := f.places.GetByID(ctx, in.PlaceID)
	if err != nil {
		return nil, err
	}

	if callerID == place.OwnerID {
		f.logger.Debug("owner attempted to review own place",
			"caller_id", callerID,
			"place_id", in.PlaceID)
		return nil, ErrOwnerReview
	}

	if _, err := f.reviews.GetByUserAndPlace(ctx, callerID, in.PlaceID); err == nil {
		f.logger.Debug("caller already reviewed place",
			"caller_id", callerID,
			"place_id", in.PlaceID)
		return nil, store.ErrReviewExists
	} else if !store.IsNotFoundError(err) {
		return nil, err
	}

	review, err := domain.NewReview(in.Text, in.Rating, in.PlaceID, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	if err := f.reviews.Create(ctx, review); err != nil {
		f.logger.Error("failed to save review", "error", err, "review_id", review.ID)
		return nil, err
	}

	f.logger.Info("review created",
		"review_id", review.ID,
		"place_id", in.PlaceID,
		"user_id", in.UserID)
	return review, nil
}

// GetReview retrieves a review by ID.
func (f *Facade) GetReview(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	return f.reviews.GetByID(ctx, id)
}

// GetAllReviews returns all reviews in insertion order.
func (f *Facade) GetAllReviews(ctx context.Context) ([]*domain.Review, error) {
	return f.reviews.GetAll(ctx)
}

// GetReviewsByPlace returns all reviews of the given place in insertion
// order. An unknown place yields an empty result, not an error.
func (f *Facade) GetReviewsByPlace(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error) {
	return f.reviews.GetByPlace(ctx, placeID)
}

// GetUserReviewForPlace returns the review the given user wrote for the
// given place, or store.ErrReviewNotFound.
func (f *Facade) GetUserReviewForPlace(ctx context.Context, userID, placeID uuid.UUID) (*domain.Review, error) {
	return f.reviews.GetByUserAndPlace(ctx, userID, placeID)
}

// UpdateReview applies the patch to the stored review and refreshes the
// update timestamp. Only the original author may update; any other caller
// fails with ErrNotReviewAuthor and the review is unchanged.
func (f *Facade) UpdateReview(ctx context.Context, callerID, id uuid.UUID, patch ReviewPatch) (*domain.Review, error) {
	review, err := f.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if review.UserID != callerID {
		f.logger.Debug("non-author attempted to update review",
			"caller_id", callerID,
			"review_id", id)
		return nil, ErrNotReviewAuthor
	}

	if patch.Text != nil {
		review.Text = *patch.Text
	}
	if patch.Rating != nil {
		review.Rating = *patch.Rating
	}

	if err := review.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	review.UpdatedAt = time.Now().UTC()

	if err := f.reviews.Update(ctx, review); err != nil {
		return nil, err
	}

	f.logger.Info("review updated", "review_id", id)
	return review, nil
}

// DeleteReview removes a review by ID. Only the original author may
// delete; any other caller fails with ErrNotReviewAuthor. A second delete
// of the same ID returns store.ErrReviewNotFound.
func (f *Facade) DeleteReview(ctx context.Context, callerID, id uuid.UUID) error {
	review, err := f.reviews.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if review.UserID != callerID {
		f.logger.Debug("non-author attempted to delete review",
			"caller_id", callerID,
			"review_id", id)
		return ErrNotReviewAuthor
	}

	if err := f.reviews.Delete(ctx, id); err != nil {
		return err
	}

	f.logger.Info("review deleted", "review_id", id)
	return nil
}
