package memstore

import (
	"context"

	"github.com/andreamarquez/holbertonschool-hbnb/internal/domain"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/store"
	"github.com/google/uuid"
)

// PlaceStore implements store.PlaceStore backed by an in-memory repository.
type PlaceStore struct {
	repo *repository[domain.Place]
}

var _ store.PlaceStore = (*PlaceStore)(nil)

// NewPlaceStore creates a new empty in-memory place store.
func NewPlaceStore() *PlaceStore {
	return &PlaceStore{repo: newRepository[domain.Place]()}
}

// clonePlace deep-copies a place so the stored amenity slice is never
// aliased by callers.
func clonePlace(p domain.Place) domain.Place {
	amenities := make([]uuid.UUID, len(p.AmenityIDs))
	copy(amenities, p.AmenityIDs)
	p.AmenityIDs = amenities
	return p
}

// Create saves a new place.
func (s *PlaceStore) Create(ctx context.Context, place *domain.Place) error {
	return s.repo.add(place.ID, clonePlace(*place))
}

// GetByID retrieves a place by ID.
func (s *PlaceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	p, ok := s.repo.get(id)
	if !ok {
		return nil, store.ErrPlaceNotFound
	}
	p = clonePlace(p)
	return &p, nil
}

// GetAll returns all places in insertion order.
func (s *PlaceStore) GetAll(ctx context.Context) ([]*domain.Place, error) {
	places := s.repo.all()
	out := make([]*domain.Place, len(places))
	for i := range places {
		p := clonePlace(places[i])
		out[i] = &p
	}
	return out, nil
}

// Update replaces the stored place.
func (s *PlaceStore) Update(ctx context.Context, place *domain.Place) error {
	if !s.repo.replace(place.ID, clonePlace(*place)) {
		return store.ErrPlaceNotFound
	}
	return nil
}

// Delete removes a place by ID. Reviews referencing the place are left in
// place; references are weak.
func (s *PlaceStore) Delete(ctx context.Context, id uuid.UUID) error {
	if !s.repo.remove(id) {
		return store.ErrPlaceNotFound
	}
	return nil
}
