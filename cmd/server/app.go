package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/andreamarquez/holbertonschool-hbnb/internal/config"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/platform/memstore"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/service"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/service/auth"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Stores (using interfaces for proper abstraction)
	userStore    store.UserStore
	placeStore   store.PlaceStore
	amenityStore store.AmenityStore
	reviewStore  store.ReviewStore

	// Service interfaces
	jwtService auth.JWTService
	facade     *service.Facade
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration and logger
// that must be established before application initialization.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	// Initialize JWT service
	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	// Initialize stores
	app.userStore = memstore.NewUserStore()
	app.placeStore = memstore.NewPlaceStore()
	app.amenityStore = memstore.NewAmenityStore()
	app.reviewStore = memstore.NewReviewStore()

	// Initialize password hashing
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	// Initialize the facade used by all HTTP handlers
	app.facade = service.NewFacade(
		app.userStore,
		app.placeStore,
		app.amenityStore,
		app.reviewStore,
		hasher,
		hasher,
		logger,
	)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	// Set up router using the application dependencies
	router := app.setupRouter()

	// Start the HTTP server
	err := app.startHTTPServer(ctx, router)
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources. The stores
// are all in-memory, so there is nothing to flush or close.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
