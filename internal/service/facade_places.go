package service

import (
	"context"
	"fmt"
	"time"

	"github.com/andreamarquez/holbertonschool-hbnb/internal/domain"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/store"
	"github.com/google/uuid"
)

// CreatePlace lists a new place. The owner must resolve to an existing
// user or the call fails with ErrOwnerNotFound before anything is
// persisted. Amenity IDs that do not resolve to an existing amenity are
// silently dropped, not an error; see resolveAmenities.
func (f *Facade) CreatePlace(ctx context.Context, in CreatePlaceInput) (*domain.Place, error) {
	if _, err := f.users.GetByID(ctx, in.OwnerID); err != nil {
		if store.IsNotFoundError(err) {
			f.logger.Debug("place owner did not resolve", "owner_id", in.OwnerID)
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}

	place, err := domain.NewPlace(in.Title, in.Description, in.Price, in.Latitude, in.Longitude, in.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	place.AmenityIDs = f.resolveAmenities(ctx, in.AmenityIDs)

	if err := f.places.Create(ctx, place); err != nil {
		f.logger.Error("failed to save place", "error", err, "place_id", place.ID)
		return nil, err
	}

	f.logger.Info("place created", "place_id", place.ID, "owner_id", in.OwnerID)
	return place, nil
}

// GetPlace retrieves a place by ID.
func (f *Facade) GetPlace(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	return f.places.GetByID(ctx, id)
}

// GetAllPlaces returns all places in insertion order.
func (f *Facade) GetAllPlaces(ctx context.Context) ([]*domain.Place, error) {
	return f.places.GetAll(ctx)
}

// UpdatePlace applies the patch to the stored place and refreshes the
// update timestamp. A new owner ID is applied only when it resolves to an
// existing user; a non-resolving owner leaves the current owner unchanged
// without error. The amenity list is always rebuilt from the patch, so a
// nil or empty patch list clears it. Returns store.ErrPlaceNotFound for an
// absent ID.
func (f *Facade) UpdatePlace(ctx context.Context, id uuid.UUID, patch PlacePatch) (*domain.Place, error) {
	place, err := f.places.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.OwnerID != nil {
		if _, err := f.users.GetByID(ctx, *patch.OwnerID); err == nil {
			place.OwnerID = *patch.OwnerID
		} else if store.IsNotFoundError(err) {
			f.logger.Debug("new place owner did not resolve, keeping current owner",
				"place_id", id,
				"owner_id", *patch.OwnerID)
		} else {
			return nil, err
		}
	}

	if patch.Title != nil {
		place.Title = *patch.Title
	}
	if patch.Description != nil {
		place.Description = *patch.Description
	}
	if patch.Price != nil {
		place.Price = *patch.Price
	}
	if patch.Latitude != nil {
		place.Latitude = *patch.Latitude
	}
	if patch.Longitude != nil {
		place.Longitude = *patch.Longitude
	}

	place.AmenityIDs = f.resolveAmenities(ctx, patch.AmenityIDs)

	if err := place.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	place.UpdatedAt = time.Now().UTC()

	if err := f.places.Update(ctx, place); err != nil {
		return nil, err
	}

	f.logger.Info("place updated", "place_id", id)
	return place, nil
}

// DeletePlace removes a place by ID. Reviews of the place are not
// cascade-deleted; cross-references are weak.
func (f *Facade) DeletePlace(ctx context.Context, id uuid.UUID) error {
	if err := f.places.Delete(ctx, id); err != nil {
		return err
	}
	f.logger.Info("place deleted", "place_id", id)
	return nil
}

// resolveAmenities filters the given amenity IDs down to those that
// resolve to an existing amenity, preserving order and duplicates.
// Non-resolving IDs are dropped silently; this leniency is deliberate and
// covered by tests.
func (f *Facade) resolveAmenities(ctx context.Context, ids []uuid.UUID) []uuid.UUID {
	resolved := make([]uuid.UUID, 0, len(ids))
	for _, amenityID := range ids {
		if _, err := f.amenities.GetByID(ctx, amenityID); err != nil {
			f.logger.Debug("amenity did not resolve, dropped", "amenity_id", amenityID)
			continue
		}
		resolved = append(resolved, amenityID)
	}
	return resolved
}
