package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/andreamarquez/holbertonschool-hbnb/internal/domain"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/service"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/service/auth"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
//
// The mapping keeps authentication (401) and authorization (403) distinct:
// collapsing them would lose information a client needs (re-authenticate
// vs. forbidden).
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden

	// Referential-integrity failures on create are client-fixable
	case errors.Is(err, service.ErrOwnerNotFound):
		return http.StatusBadRequest

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal
// details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid refresh token"

	case errors.Is(err, service.ErrOwnerReview):
		return "Owners cannot review their own place"

	case errors.Is(err, service.ErrNotReviewAuthor):
		return "Only the review author may modify it"

	case errors.Is(err, service.ErrNotAccountOwner):
		return "Users may only modify their own account"

	case errors.Is(err, service.ErrOwnerNotFound):
		return "Owner not found"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrPlaceNotFound):
		return "Place not found"

	case errors.Is(err, store.ErrAmenityNotFound):
		return "Amenity not found"

	case errors.Is(err, store.ErrReviewNotFound):
		return "Review not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already registered"

	case errors.Is(err, store.ErrReviewExists):
		return "User has already reviewed this place"

	case errors.Is(err, domain.ErrValidation):
		return "Invalid input data"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes internal details from validator errors
// and returns a user-friendly message naming the offending field.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'LoginRequest.Email' Error:Field validation
	// for 'Email' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, validationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// validationTagMessage maps validation tags to user-friendly messages.
func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "gte", "lte":
		return "out of range"
	case "uuid":
		return "invalid ID format"
	default:
		return "validation failed"
	}
}
