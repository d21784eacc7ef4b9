package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Place validation errors
var (
	ErrEmptyPlaceID     = errors.New("place ID cannot be empty")
	ErrEmptyPlaceTitle  = errors.New("place title cannot be empty")
	ErrEmptyPlaceOwner  = errors.New("place owner ID cannot be empty")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
)

// Place represents a property listed for rent. The owner and amenities are
// stored as plain identifiers; they express a relation, never ownership,
// and are resolved by the service layer.
type Place struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	OwnerID     uuid.UUID   `json:"owner_id"`
	AmenityIDs  []uuid.UUID `json:"amenities"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// NewPlace creates a new Place owned by the given user. Amenity IDs are
// attached separately by the service layer, which is responsible for
// resolving them. Returns an error if validation fails.
func NewPlace(title, description string, price, latitude, longitude float64, ownerID uuid.UUID) (*Place, error) {
	now := time.Now().UTC()
	place := &Place{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Price:       price,
		Latitude:    latitude,
		Longitude:   longitude,
		OwnerID:     ownerID,
		AmenityIDs:  []uuid.UUID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := place.Validate(); err != nil {
		return nil, err
	}

	return place, nil
}

// Validate checks if the Place has valid data.
func (p *Place) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPlaceID
	}

	if p.Title == "" {
		return ErrEmptyPlaceTitle
	}

	if p.OwnerID == uuid.Nil {
		return ErrEmptyPlaceOwner
	}

	if p.Price < 0 {
		return ErrNegativePrice
	}

	if p.Latitude < -90 || p.Latitude > 90 {
		return ErrInvalidLatitude
	}

	if p.Longitude < -180 || p.Longitude > 180 {
		return ErrInvalidLongitude
	}

	return nil
}

// AddAmenity appends an amenity ID to the place. Insertion order is
// preserved and duplicates are allowed.
func (p *Place) AddAmenity(amenityID uuid.UUID) {
	p.AmenityIDs = append(p.AmenityIDs, amenityID)
}
