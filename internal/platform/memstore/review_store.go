package memstore

import (
	"context"

	"github.com/andreamarquez/holbertonschool-hbnb/internal/domain"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/store"
	"github.com/google/uuid"
)

// ReviewStore implements store.ReviewStore backed by an in-memory
// repository.
type ReviewStore struct {
	repo *repository[domain.Review]
}

var _ store.ReviewStore = (*ReviewStore)(nil)

// NewReviewStore creates a new empty in-memory review store.
func NewReviewStore() *ReviewStore {
	return &ReviewStore{repo: newRepository[domain.Review]()}
}

// Create saves a new review. The (user, place) uniqueness check and the
// insert run under the repository lock.
func (s *ReviewStore) Create(ctx context.Context, review *domain.Review) error {
	r := *review

	return s.repo.addUnless(r.ID, r, func(existing domain.Review) bool {
		return existing.UserID == r.UserID && existing.PlaceID == r.PlaceID
	}, store.ErrReviewExists)
}

// GetByID retrieves a review by ID.
func (s *ReviewStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	r, ok := s.repo.get(id)
	if !ok {
		return nil, store.ErrReviewNotFound
	}
	return &r, nil
}

// GetAll returns all reviews in insertion order.
func (s *ReviewStore) GetAll(ctx context.Context) ([]*domain.Review, error) {
	reviews := s.repo.all()
	out := make([]*domain.Review, len(reviews))
	for i := range reviews {
		out[i] = &reviews[i]
	}
	return out, nil
}

// GetByPlace returns all reviews of the given place in insertion order.
func (s *ReviewStore) GetByPlace(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error) {
	reviews := s.repo.filter(func(r domain.Review) bool {
		return r.PlaceID == placeID
	})
	out := make([]*domain.Review, len(reviews))
	for i := range reviews {
		out[i] = &reviews[i]
	}
	return out, nil
}

// GetByUserAndPlace returns the review the user wrote for the place.
func (s *ReviewStore) GetByUserAndPlace(ctx context.Context, userID, placeID uuid.UUID) (*domain.Review, error) {
	r, ok := s.repo.getBy(func(existing domain.Review) bool {
		return existing.UserID == userID && existing.PlaceID == placeID
	})
	if !ok {
		return nil, store.ErrReviewNotFound
	}
	return &r, nil
}

// Update replaces the stored review.
func (s *ReviewStore) Update(ctx context.Context, review *domain.Review) error {
	if !s.repo.replace(review.ID, *review) {
		return store.ErrReviewNotFound
	}
	return nil
}

// Delete removes a review by ID.
func (s *ReviewStore) Delete(ctx context.Context, id uuid.UUID) error {
	if !s.repo.remove(id) {
		return store.ErrReviewNotFound
	}
	return nil
}
