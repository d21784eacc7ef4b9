package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Review validation errors
var (
	ErrEmptyReviewID    = errors.New("review ID cannot be empty")
	ErrEmptyReviewText  = errors.New("review text cannot be empty")
	ErrEmptyReviewPlace = errors.New("review place ID cannot be empty")
	ErrEmptyReviewUser  = errors.New("review user ID cannot be empty")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
)

// Review represents a user's review of a place. At most one review may
// exist per (user, place) pair; that invariant is enforced by the store.
type Review struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	PlaceID   uuid.UUID `json:"place_id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewReview creates a new Review of the given place by the given user.
// Returns an error if validation fails.
func NewReview(text string, rating int, placeID, userID uuid.UUID) (*Review, error) {
	now := time.Now().UTC()
	review := &Review{
		ID:        uuid.New(),
		Text:      text,
		Rating:    rating,
		PlaceID:   placeID,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := review.Validate(); err != nil {
		return nil, err
	}

	return review, nil
}

// Validate checks if the Review has valid data.
func (r *Review) Validate() error {
	if r.ID == uuid.Nil {
		return ErrEmptyReviewID
	}

	if r.Text == "" {
		return ErrEmptyReviewText
	}

	if r.Rating < 1 || r.Rating > 5 {
		return ErrInvalidRating
	}

	if r.PlaceID == uuid.Nil {
		return ErrEmptyReviewPlace
	}

	if r.UserID == uuid.Nil {
		return ErrEmptyReviewUser
	}

	return nil
}
