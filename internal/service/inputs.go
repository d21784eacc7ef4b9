package service

import "github.com/google/uuid"

// Create inputs carry exactly the fields a caller may set at creation
// time. Patches list only the mutable fields; a nil pointer leaves the
// stored value untouched. Unknown fields are rejected at the API edge.

// CreateUserInput holds the fields for registering a new user.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// UserPatch holds the mutable user fields for a partial update.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
}

// AmenityPatch holds the mutable amenity fields for a partial update.
type AmenityPatch struct {
	Name *string
}

// CreatePlaceInput holds the fields for listing a new place.
type CreatePlaceInput struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     uuid.UUID
	AmenityIDs  []uuid.UUID
}

// PlacePatch holds the mutable place fields for a partial update.
// AmenityIDs is not a pointer: the stored amenity list is always rebuilt
// from the patch, so a nil or empty slice clears it.
type PlacePatch struct {
	Title       *string
	Description *string
	Price       *float64
	Latitude    *float64
	Longitude   *float64
	OwnerID     *uuid.UUID
	AmenityIDs  []uuid.UUID
}

// CreateReviewInput holds the fields for posting a new review.
type CreateReviewInput struct {
	Text    string
	Rating  int
	PlaceID uuid.UUID
	UserID  uuid.UUID
}

// ReviewPatch holds the mutable review fields for a partial update.
type ReviewPatch struct {
	Text   *string
	Rating *int
}
