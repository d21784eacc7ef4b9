package service

import (
	"errors"
	"fmt"

	"github.com/andreamarquez/holbertonschool-hbnb/internal/domain"
)

// Facade-level errors. Authorization failures wrap domain.ErrUnauthorized
// so the API layer can map them to 403 as a family; they are deliberately
// distinct from authentication failures.
var (
	// ErrOwnerNotFound is returned when a place's owner ID does not
	// resolve to an existing user at creation time.
	ErrOwnerNotFound = errors.New("place owner not found")

	// ErrInvalidCredentials is returned on login failure. Unknown email
	// and wrong password are intentionally indistinguishable to prevent
	// account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrOwnerReview is returned when a place's owner attempts to review
	// their own place.
	ErrOwnerReview = fmt.Errorf("%w: owners cannot review their own place", domain.ErrUnauthorized)

	// ErrNotReviewAuthor is returned when someone other than the original
	// author attempts to update or delete a review.
	ErrNotReviewAuthor = fmt.Errorf("%w: only the review author may modify it", domain.ErrUnauthorized)

	// ErrNotAccountOwner is returned when a user attempts to modify an
	// account other than their own.
	ErrNotAccountOwner = fmt.Errorf("%w: users may only modify their own account", domain.ErrUnauthorized)
)

// IsUnauthorizedError checks if the error is an authorization failure
// (valid identity, insufficient permission).
func IsUnauthorizedError(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized)
}
