package api

import (
	"log/slog"
	"net/http"

	"github.com/andreamarquez/holbertonschool-hbnb/internal/api/middleware"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/api/shared"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/service"
	"github.com/google/uuid"
)

// ReviewHandler handles review-related HTTP requests. Create, update, and
// delete require an authenticated caller; the facade enforces the
// ownership rules against that identity.
type ReviewHandler struct {
	facade *service.Facade
	logger *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(facade *service.Facade, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &ReviewHandler{
		facade: facade,
		logger: logger.With(slog.String("component", "review_handler")),
	}
}

// CreateReview handles POST /reviews (protected).
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.GetUserID(r)
	if !ok || callerID == uuid.Nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req CreateReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	review, err := h.facade.CreateReview(r.Context(), callerID, service.CreateReviewInput{
		Text:    req.Text,
		Rating:  req.Rating,
		PlaceID: uuid.MustParse(req.PlaceID),
		UserID:  uuid.MustParse(req.UserID),
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, reviewToResponse(review))
}

// GetReview handles GET /reviews/{id}.
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	reviewID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	review, err := h.facade.GetReview(r.Context(), reviewID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reviewToResponse(review))
}

// ListReviews handles GET /reviews.
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.facade.GetAllReviews(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reviewsToResponses(reviews))
}

// UpdateReview handles PUT /reviews/{id} (protected, author-only).
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	reviewID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	callerID, ok := middleware.GetUserID(r)
	if !ok || callerID == uuid.Nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req UpdateReviewRequest
	if err := shared.DecodeJSONStrict(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	review, err := h.facade.UpdateReview(r.Context(), callerID, reviewID, service.ReviewPatch{
		Text:   req.Text,
		Rating: req.Rating,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reviewToResponse(review))
}

// DeleteReview handles DELETE /reviews/{id} (protected, author-only).
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	callerID, ok := middleware.GetUserID(r)
	if !ok || callerID == uuid.Nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	if err := h.facade.DeleteReview(r.Context(), callerID, reviewID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"message": "Review deleted successfully"})
}
