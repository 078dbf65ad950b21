package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"

	"github.com/devharu/snaptag/backend/internal/router"
	"github.com/devharu/snaptag/backend/internal/tokenstore"
	"github.com/devharu/snaptag/backend/pkg/config"
	"github.com/devharu/snaptag/backend/pkg/storage"
	"github.com/devharu/snaptag/backend/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB(cfg.PostgresConnStr)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer config.CloseDB(db)

	// Initialize the refresh-token store
	store, err := tokenstore.NewRedisStore(cfg.RedisAddr)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer store.Close()

	// Initialize the media uploader
	ctx := context.Background()
	uploader, err := storage.NewFirebaseUploader(ctx, cfg.FirebaseCredentialsPath, cfg.StorageBucket)
	if err != nil {
		log.Fatalf("Failed to initialize storage uploader: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db, store, uploader, cfg)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
