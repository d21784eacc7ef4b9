package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/andreamarquez/holbertonschool-hbnb/internal/api"
	apiMiddleware "github.com/andreamarquez/holbertonschool-hbnb/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create handlers
// and register routes. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	// Create a router
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for improved error handling

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(app.facade, app.jwtService, &app.config.Auth, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	userHandler := api.NewUserHandler(app.facade, app.logger)
	amenityHandler := api.NewAmenityHandler(app.facade, app.logger)
	placeHandler := api.NewPlaceHandler(app.facade, app.logger)
	reviewHandler := api.NewReviewHandler(app.facade, app.logger)

	// Register routes
	r.Route("/api/v1", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// User endpoints
		r.Post("/users", userHandler.CreateUser)
		r.Get("/users", userHandler.ListUsers)
		r.Get("/users/{id}", userHandler.GetUser)

		// Amenity endpoints
		r.Post("/amenities", amenityHandler.CreateAmenity)
		r.Get("/amenities", amenityHandler.ListAmenities)
		r.Get("/amenities/{id}", amenityHandler.GetAmenity)
		r.Put("/amenities/{id}", amenityHandler.UpdateAmenity)
		r.Delete("/amenities/{id}", amenityHandler.DeleteAmenity)

		// Place endpoints
		r.Post("/places", placeHandler.CreatePlace)
		r.Get("/places", placeHandler.ListPlaces)
		r.Get("/places/{id}", placeHandler.GetPlace)
		r.Put("/places/{id}", placeHandler.UpdatePlace)
		r.Delete("/places/{id}", placeHandler.DeletePlace)
		r.Get("/places/{id}/reviews", placeHandler.ListPlaceReviews)

		// Review read endpoints (public)
		r.Get("/reviews", reviewHandler.ListReviews)
		r.Get("/reviews/{id}", reviewHandler.GetReview)

		// Protected routes
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

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
