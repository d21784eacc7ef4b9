package api

import (
	"log/slog"
	"net/http"

	"github.com/andreamarquez/holbertonschool-hbnb/internal/api/shared"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/service"
)

// AmenityHandler handles amenity-related HTTP requests.
type AmenityHandler struct {
	facade *service.Facade
	logger *slog.Logger
}

// NewAmenityHandler creates a new AmenityHandler.
func NewAmenityHandler(facade *service.Facade, logger *slog.Logger) *AmenityHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &AmenityHandler{
		facade: facade,
		logger: logger.With(slog.String("component", "amenity_handler")),
	}
}

// CreateAmenity handles POST /amenities.
func (h *AmenityHandler) CreateAmenity(w http.ResponseWriter, r *http.Request) {
	var req CreateAmenityRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	amenity, err := h.facade.CreateAmenity(r.Context(), req.Name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, amenityToResponse(amenity))
}

// GetAmenity handles GET /amenities/{id}.
func (h *AmenityHandler) GetAmenity(w http.ResponseWriter, r *http.Request) {
	amenityID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	amenity, err := h.facade.GetAmenity(r.Context(), amenityID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, amenityToResponse(amenity))
}

// ListAmenities handles GET /amenities.
func (h *AmenityHandler) ListAmenities(w http.ResponseWriter, r *http.Request) {
	amenities, err := h.facade.GetAllAmenities(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	out := make([]AmenityResponse, len(amenities))
	for i, a := range amenities {
		out[i] = amenityToResponse(a)
	}
	shared.RespondWithJSON(w, r, http.StatusOK, out)
}

// UpdateAmenity handles PUT /amenities/{id}.
func (h *AmenityHandler) UpdateAmenity(w http.ResponseWriter, r *http.Request) {
	amenityID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req UpdateAmenityRequest
	if err := shared.DecodeJSONStrict(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	amenity, err := h.facade.UpdateAmenity(r.Context(), amenityID, service.AmenityPatch{
		Name: req.Name,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, amenityToResponse(amenity))
}

// DeleteAmenity handles DELETE /amenities/{id}.
func (h *AmenityHandler) DeleteAmenity(w http.ResponseWriter, r *http.Request) {
	amenityID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteAmenity(r.Context(), amenityID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"message": "Amenity deleted successfully"})
}
