package api

import (
	"log/slog"
	"net/http"

	"github.com/andreamarquez/holbertonschool-hbnb/internal/api/shared"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/service"
	"github.com/google/uuid"
)

// PlaceHandler handles place-related HTTP requests.
type PlaceHandler struct {
	facade *service.Facade
	logger *slog.Logger
}

// NewPlaceHandler creates a new PlaceHandler.
func NewPlaceHandler(facade *service.Facade, logger *slog.Logger) *PlaceHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &PlaceHandler{
		facade: facade,
		logger: logger.With(slog.String("component", "place_handler")),
	}
}

// CreatePlace handles POST /places.
func (h *PlaceHandler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	var req CreatePlaceRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	// Validated as uuid above.
	ownerID := uuid.MustParse(req.OwnerID)
	amenityIDs := make([]uuid.UUID, len(req.Amenities))
	for i, raw := range req.Amenities {
		amenityIDs[i] = uuid.MustParse(raw)
	}

	place, err := h.facade.CreatePlace(r.Context(), service.CreatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		OwnerID:     ownerID,
		AmenityIDs:  amenityIDs,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, placeToResponse(place))
}

// GetPlace handles GET /places/{id}.
// The response embeds the place's reviews.
func (h *PlaceHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	placeID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	place, err := h.facade.GetPlace(r.Context(), placeID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	reviews, err := h.facade.GetReviewsByPlace(r.Context(), placeID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PlaceDetailResponse{
		PlaceResponse: placeToResponse(place),
		Reviews:       reviewsToResponses(reviews),
	})
}

// ListPlaces handles GET /places.
func (h *PlaceHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := h.facade.GetAllPlaces(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	out := make([]PlaceResponse, len(places))
	for i, p := range places {
		out[i] = placeToResponse(p)
	}
	shared.RespondWithJSON(w, r, http.StatusOK, out)
}

// UpdatePlace handles PUT /places/{id}.
func (h *PlaceHandler) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	placeID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req UpdatePlaceRequest
	if err := shared.DecodeJSONStrict(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	patch := service.PlacePatch{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
	if req.OwnerID != nil {
		ownerID := uuid.MustParse(*req.OwnerID)
		patch.OwnerID = &ownerID
	}
	patch.AmenityIDs = make([]uuid.UUID, len(req.Amenities))
	for i, raw := range req.Amenities {
		patch.AmenityIDs[i] = uuid.MustParse(raw)
	}

	place, err := h.facade.UpdatePlace(r.Context(), placeID, patch)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, placeToResponse(place))
}

// DeletePlace handles DELETE /places/{id}.
func (h *PlaceHandler) DeletePlace(w http.ResponseWriter, r *http.Request) {
	placeID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.facade.DeletePlace(r.Context(), placeID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"message": "Place deleted successfully"})
}

// ListPlaceReviews handles GET /places/{id}/reviews.
func (h *PlaceHandler) ListPlaceReviews(w http.ResponseWriter, r *http.Request) {
	placeID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	// Resolve the place first so an unknown place is a 404, not an empty
	// list.
	if _, err := h.facade.GetPlace(r.Context(), placeID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	reviews, err := h.facade.GetReviewsByPlace(r.Context(), placeID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reviewsToResponses(reviews))
}
