package api

import (
	"log/slog"
	"net/http"

	"github.com/andreamarquez/holbertonschool-hbnb/internal/api/middleware"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/api/shared"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	facade *service.Facade
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(facade *service.Facade, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &UserHandler{
		facade: facade,
		logger: logger.With(slog.String("component", "user_handler")),
	}
}

// CreateUser handles POST /users (public registration).
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	user, err := h.facade.CreateUser(r.Context(), service.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, userToResponse(user))
}

// GetUser handles GET /users/{id}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	user, err := h.facade.GetUser(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// ListUsers handles GET /users.
// No entry ever includes a password field.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.facade.GetAllUsers(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = userToResponse(u)
	}
	shared.RespondWithJSON(w, r, http.StatusOK, out)
}

// UpdateUser handles PUT /users/{id} (protected).
// A user may only update their own account.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	callerID, ok := middleware.GetUserID(r)
	if !ok || callerID == uuid.Nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	if callerID != userID {
		shared.RespondWithErrorAndLog(w, r, http.StatusForbidden,
			GetSafeErrorMessage(service.ErrNotAccountOwner), service.ErrNotAccountOwner)
		return
	}

	var req UpdateUserRequest
	if err := shared.DecodeJSONStrict(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	user, err := h.facade.UpdateUser(r.Context(), userID, service.UserPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// DeleteUser handles DELETE /users/{id} (protected).
// A user may only delete their own account. Owned places and authored
// reviews are left in place; references are weak.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	callerID, ok := middleware.GetUserID(r)
	if !ok || callerID == uuid.Nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	if callerID != userID {
		shared.RespondWithErrorAndLog(w, r, http.StatusForbidden,
			GetSafeErrorMessage(service.ErrNotAccountOwner), service.ErrNotAccountOwner)
		return
	}

	if err := h.facade.DeleteUser(r.Context(), userID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

// parseIDParam extracts and parses a UUID path parameter, writing a 400
// response on failure.
func parseIDParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "ID is required")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid ID format")
		return uuid.Nil, false
	}

	return id, true
}
