package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apiMiddleware "github.com/andreamarquez/holbertonschool-hbnb/internal/api/middleware"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/config"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/domain"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/platform/memstore"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/service"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/service/auth"
)

// testEnv wires real in-memory stores, the facade, and a JWT service
// behind the same route layout the server uses, so handler tests exercise
// the full request path.
type testEnv struct {
	facade     *service.Facade
	jwtService auth.JWTService
	router     http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	authCfg := config.AuthConfig{
		JWTSecret:                   "test-secret-that-is-long-enough-for-testing",
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: 1440,
		BcryptCost:                  bcrypt.MinCost,
	}

	jwtService, err := auth.NewJWTService(authCfg)
	require.NoError(t, err)

	hasher := auth.NewBcryptHasher(authCfg.BcryptCost)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	facade := service.NewFacade(
		memstore.NewUserStore(),
		memstore.NewPlaceStore(),
		memstore.NewAmenityStore(),
		memstore.NewReviewStore(),
		hasher,
		hasher,
		logger,
	)

	authHandler := NewAuthHandler(facade, jwtService, &authCfg, logger)
	userHandler := NewUserHandler(facade, logger)
	amenityHandler := NewAmenityHandler(facade, logger)
	placeHandler := NewPlaceHandler(facade, logger)
	reviewHandler := NewReviewHandler(facade, logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(jwtService)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		r.Post("/users", userHandler.CreateUser)
		r.Get("/users", userHandler.ListUsers)
		r.Get("/users/{id}", userHandler.GetUser)

		r.Post("/amenities", amenityHandler.CreateAmenity)
		r.Get("/amenities", amenityHandler.ListAmenities)
		r.Get("/amenities/{id}", amenityHandler.GetAmenity)
		r.Put("/amenities/{id}", amenityHandler.UpdateAmenity)
		r.Delete("/amenities/{id}", amenityHandler.DeleteAmenity)

		r.Post("/places", placeHandler.CreatePlace)
		r.Get("/places", placeHandler.ListPlaces)
		r.Get("/places/{id}", placeHandler.GetPlace)
		r.Put("/places/{id}", placeHandler.UpdatePlace)
		r.Delete("/places/{id}", placeHandler.DeletePlace)
		r.Get("/places/{id}/reviews", placeHandler.ListPlaceReviews)

		r.Get("/reviews", reviewHandler.ListReviews)
		r.Get("/reviews/{id}", reviewHandler.GetReview)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/auth/me", authHandler.Me)

			r.Put("/users/{id}", userHandler.UpdateUser)
			r.Delete("/users/{id}", userHandler.DeleteUser)

			r.Post("/reviews", reviewHandler.CreateReview)
			r.Put("/reviews/{id}", reviewHandler.UpdateReview)
			r.Delete("/reviews/{id}", reviewHandler.DeleteReview)
		})
	})

	return &testEnv{
		facade:     facade,
		jwtService: jwtService,
		router:     r,
	}
}

// do issues a request against the test router. A non-nil body is JSON
// encoded; a non-empty token is sent as a bearer credential.
func (e *testEnv) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// errorBody mirrors the serialized error response shape.
type errorBody struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id"`
}

// decode unmarshals a recorded JSON response body.
func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func (e *testEnv) createUser(t *testing.T, email string) *domain.User {
	t.Helper()

	user, err := e.facade.CreateUser(context.Background(), service.CreateUserInput{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  "password123",
	})
	require.NoError(t, err)
	return user
}

func (e *testEnv) createPlace(t *testing.T, owner *domain.User) *domain.Place {
	t.Helper()

	place, err := e.facade.CreatePlace(context.Background(), service.CreatePlaceInput{
		Title:     "Test Place",
		Price:     80,
		Latitude:  45,
		Longitude: 7,
		OwnerID:   owner.ID,
	})
	require.NoError(t, err)
	return place
}

// tokenFor issues a valid access token for the given user.
func (e *testEnv) tokenFor(t *testing.T, user *domain.User) string {
	t.Helper()

	token, err := e.jwtService.GenerateToken(context.Background(), user)
	require.NoError(t, err)
	return token
}
