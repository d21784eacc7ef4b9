package api

import (
	"time"

	"github.com/andreamarquez/holbertonschool-hbnb/internal/domain"
	"github.com/google/uuid"
)

// Request payloads. Create requests list every settable field; update
// requests use pointers so an absent field leaves the stored value
// untouched, and unknown fields are rejected at decode time.

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// CreateUserRequest defines the payload for user registration.
type CreateUserRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=8,max=72"`
}

// UpdateUserRequest defines the payload for a partial user update.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=1"`
	LastName  *string `json:"last_name,omitempty"  validate:"omitempty,min=1"`
	Email     *string `json:"email,omitempty"      validate:"omitempty,email"`
	Password  *string `json:"password,omitempty"   validate:"omitempty,min=8,max=72"`
}

// CreateAmenityRequest defines the payload for creating an amenity.
type CreateAmenityRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdateAmenityRequest defines the payload for a partial amenity update.
type UpdateAmenityRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1"`
}

// CreatePlaceRequest defines the payload for listing a place.
type CreatePlaceRequest struct {
	Title       string   `json:"title"       validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price"       validate:"gte=0"`
	Latitude    float64  `json:"latitude"    validate:"gte=-90,lte=90"`
	Longitude   float64  `json:"longitude"   validate:"gte=-180,lte=180"`
	OwnerID     string   `json:"owner_id"    validate:"required,uuid"`
	Amenities   []string `json:"amenities"   validate:"omitempty,dive,uuid"`
}

// UpdatePlaceRequest defines the payload for a partial place update.
// An absent amenities list clears the place's amenities; the list is
// always rebuilt from the patch.
type UpdatePlaceRequest struct {
	Title       *string  `json:"title,omitempty"       validate:"omitempty,min=1"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"       validate:"omitempty,gte=0"`
	Latitude    *float64 `json:"latitude,omitempty"    validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude,omitempty"   validate:"omitempty,gte=-180,lte=180"`
	OwnerID     *string  `json:"owner_id,omitempty"    validate:"omitempty,uuid"`
	Amenities   []string `json:"amenities,omitempty"   validate:"omitempty,dive,uuid"`
}

// CreateReviewRequest defines the payload for posting a review.
type CreateReviewRequest struct {
	Text    string `json:"text"     validate:"required"`
	Rating  int    `json:"rating"   validate:"required,gte=1,lte=5"`
	UserID  string `json:"user_id"  validate:"required,uuid"`
	PlaceID string `json:"place_id" validate:"required,uuid"`
}

// UpdateReviewRequest defines the payload for a partial review update.
type UpdateReviewRequest struct {
	Text   *string `json:"text,omitempty"   validate:"omitempty,min=1"`
	Rating *int    `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
}

// Response shapes. The external representation is normalized: a place
// always exposes owner_id, a review always exposes place_id/user_id, and
// no user representation ever carries a password field.

// AuthResponse defines the successful response for the login endpoint.
type AuthResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	AccessToken  string    `json:"token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    string    `json:"expires_at,omitempty"`
}

// RefreshTokenResponse defines the successful response for the token
// refresh endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    string `json:"expires_at"`
}

// MeResponse echoes the verified claims of the authenticated caller.
type MeResponse struct {
	UserID  uuid.UUID `json:"user_id"`
	Email   string    `json:"email"`
	IsAdmin bool      `json:"is_admin"`
}

// UserResponse represents a user in API output.
type UserResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AmenityResponse represents an amenity in API output.
type AmenityResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlaceResponse represents a place in API output.
type PlaceResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	OwnerID     string    `json:"owner_id"`
	Amenities   []string  `json:"amenities"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PlaceDetailResponse is a place plus its reviews, returned by the
// single-place endpoint.
type PlaceDetailResponse struct {
	PlaceResponse
	Reviews []ReviewResponse `json:"reviews"`
}

// ReviewResponse represents a review in API output.
type ReviewResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	PlaceID   string    `json:"place_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// userToResponse converts a domain.User to a UserResponse.
func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// amenityToResponse converts a domain.Amenity to an AmenityResponse.
func amenityToResponse(a *domain.Amenity) AmenityResponse {
	return AmenityResponse{
		ID:        a.ID.String(),
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// placeToResponse converts a domain.Place to a PlaceResponse.
func placeToResponse(p *domain.Place) PlaceResponse {
	amenities := make([]string, len(p.AmenityIDs))
	for i, id := range p.AmenityIDs {
		amenities[i] = id.String()
	}

	return PlaceResponse{
		ID:          p.ID.String(),
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		OwnerID:     p.OwnerID.String(),
		Amenities:   amenities,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// reviewToResponse converts a domain.Review to a ReviewResponse.
func reviewToResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID.String(),
		Text:      r.Text,
		Rating:    r.Rating,
		PlaceID:   r.PlaceID.String(),
		UserID:    r.UserID.String(),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// reviewsToResponses converts a slice of reviews.
func reviewsToResponses(reviews []*domain.Review) []ReviewResponse {
	out := make([]ReviewResponse, len(reviews))
	for i, r := range reviews {
		out[i] = reviewToResponse(r)
	}
	return out
}
