package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Amenity validation errors
var (
	ErrEmptyAmenityID   = errors.New("amenity ID cannot be empty")
	ErrEmptyAmenityName = errors.New("amenity name cannot be empty")
)

// Amenity represents a feature a place can offer (wifi, pool, ...).
type Amenity struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAmenity creates a new Amenity with the given name.
// Returns an error if validation fails.
func NewAmenity(name string) (*Amenity, error) {
	now := time.Now().UTC()
	amenity := &Amenity{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := amenity.Validate(); err != nil {
		return nil, err
	}

	return amenity, nil
}

// Validate checks if the Amenity has valid data.
func (a *Amenity) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAmenityID
	}

	if a.Name == "" {
		return ErrEmptyAmenityName
	}

	return nil
}
