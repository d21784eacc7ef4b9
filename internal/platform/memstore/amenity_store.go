package memstore

import (
	"context"

	"github.com/andreamarquez/holbertonschool-hbnb/internal/domain"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/store"
	"github.com/google/uuid"
)

// AmenityStore implements store.AmenityStore backed by an in-memory
// repository.
type AmenityStore struct {
	repo *repository[domain.Amenity]
}

var _ store.AmenityStore = (*AmenityStore)(nil)

// NewAmenityStore creates a new empty in-memory amenity store.
func NewAmenityStore() *AmenityStore {
	return &AmenityStore{repo: newRepository[domain.Amenity]()}
}

// Create saves a new amenity.
func (s *AmenityStore) Create(ctx context.Context, amenity *domain.Amenity) error {
	return s.repo.add(amenity.ID, *amenity)
}

// GetByID retrieves an amenity by ID.
func (s *AmenityStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Amenity, error) {
	a, ok := s.repo.get(id)
	if !ok {
		return nil, store.ErrAmenityNotFound
	}
	return &a, nil
}

// GetAll returns all amenities in insertion order.
func (s *AmenityStore) GetAll(ctx context.Context) ([]*domain.Amenity, error) {
	amenities := s.repo.all()
	out := make([]*domain.Amenity, len(amenities))
	for i := range amenities {
		out[i] = &amenities[i]
	}
	return out, nil
}

// Update replaces the stored amenity.
func (s *AmenityStore) Update(ctx context.Context, amenity *domain.Amenity) error {
	if !s.repo.replace(amenity.ID, *amenity) {
		return store.ErrAmenityNotFound
	}
	return nil
}

// Delete removes an amenity by ID.
func (s *AmenityStore) Delete(ctx context.Context, id uuid.UUID) error {
	if !s.repo.remove(id) {
		return store.ErrAmenityNotFound
	}
	return nil
}
