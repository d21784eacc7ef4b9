package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/andreamarquez/holbertonschool-hbnb/internal/api/middleware"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/api/shared"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/config"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/service"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/service/auth"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	facade     *service.Facade
	jwtService auth.JWTService
	authConfig *config.AuthConfig
	logger     *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	facade *service.Facade,
	jwtService auth.JWTService,
	authConfig *config.AuthConfig,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthHandler{
		facade:     facade,
		jwtService: jwtService,
		authConfig: authConfig,
		logger:     logger.With(slog.String("component", "auth_handler")),
	}
}

// Login handles POST /auth/login.
// Unknown email and wrong password produce the same 401 response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	user, err := h.facade.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to authenticate user", err)
		return
	}

	accessToken, err := h.jwtService.GenerateToken(r.Context(), user)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to generate authentication token", err)
		return
	}

	refreshToken, err := h.jwtService.GenerateRefreshToken(r.Context(), user)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to generate refresh token", err)
		return
	}

	expiresAt := time.Now().UTC().
		Add(time.Duration(h.authConfig.TokenLifetimeMinutes) * time.Minute).
		Format(time.RFC3339)

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	})
}

// RefreshToken handles POST /auth/refresh.
// A valid refresh token yields a fresh access/refresh token pair.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req RefreshTokenRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	claims, err := h.jwtService.ValidateRefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	// The user may have been deleted since the refresh token was issued.
	user, err := h.facade.GetUser(r.Context(), claims.UserID)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid refresh token")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to refresh token", err)
		return
	}

	accessToken, err := h.jwtService.GenerateToken(r.Context(), user)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to generate authentication token", err)
		return
	}

	refreshToken, err := h.jwtService.GenerateRefreshToken(r.Context(), user)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to generate refresh token", err)
		return
	}

	expiresAt := time.Now().UTC().
		Add(time.Duration(h.authConfig.TokenLifetimeMinutes) * time.Minute).
		Format(time.RFC3339)

	shared.RespondWithJSON(w, r, http.StatusOK, RefreshTokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	})
}

// Me handles GET /auth/me.
// It echoes the verified claims of the authenticated caller.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User claims not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MeResponse{
		UserID:  claims.UserID,
		Email:   claims.Email,
		IsAdmin: claims.IsAdmin,
	})
}
