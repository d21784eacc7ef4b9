// Package main implements the entry point for the HBnB API server, a
// rental marketplace REST API over users, places, amenities, and reviews.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/andreamarquez/holbertonschool-hbnb/internal/config"
	"github.com/andreamarquez/holbertonschool-hbnb/internal/platform/logger"
)

// main initializes configuration, sets up logging, injects dependencies,
// and runs the HTTP server until it is signaled to stop.
func main() {
	cfg, logr, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app, err := newApplication(cfg, logr)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
// Returns the loaded config, the root logger, and any initialization error.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logr, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	return cfg, logr, nil
}
