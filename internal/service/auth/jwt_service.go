package auth

import (
	"context"
	"time"

	"github.com/andreamarquez/holbertonschool-hbnb/internal/domain"
	"github.com/google/uuid"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the given user.
	// The token carries the user ID as subject and the user's admin flag
	// and email as auxiliary claims.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, user *domain.User) (string, error)

	// ValidateToken validates the provided access token string and
	// extracts the claims. Returns the claims if the token is valid, or an
	// error if validation fails (expired, invalid signature, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// GenerateRefreshToken creates a signed JWT refresh token for the
	// given user. Refresh tokens have a longer lifetime and are used to
	// obtain new access tokens.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, error)

	// ValidateRefreshToken validates the provided refresh token string and
	// extracts the claims. Returns an error if validation fails (expired,
	// invalid signature, wrong token type, etc.).
	ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the identity recovered from a verified token.
// It extends standard JWT registered claims with application-specific
// fields.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued
	// for. This is the caller identity used by authorization checks.
	UserID uuid.UUID `json:"uid,omitempty"`

	// IsAdmin mirrors the user's admin flag at issuance time.
	IsAdmin bool `json:"is_admin,omitempty"`

	// Email mirrors the user's email at issuance time.
	Email string `json:"email,omitempty"`

	// TokenType indicates the purpose of the token ("access" or
	// "refresh"). Used to prevent token misuse across contexts.
	TokenType string `json:"type,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
