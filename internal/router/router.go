package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/devharu/snaptag/backend/internal/handlers"
	"github.com/devharu/snaptag/backend/internal/middleware"
	"github.com/devharu/snaptag/backend/internal/models"
	"github.com/devharu/snaptag/backend/internal/repositories"
	"github.com/devharu/snaptag/backend/internal/services"
	"github.com/devharu/snaptag/backend/internal/tokenstore"
	"github.com/devharu/snaptag/backend/pkg/config"
	"github.com/devharu/snaptag/backend/pkg/storage"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, store tokenstore.TokenStore, uploader storage.MediaUploader, cfg *config.Config) {
	// AutoMigrate PostgreSQL models
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.PostTag{},
		&models.Heart{},
		&models.React{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	heartRepo := repositories.NewPostgresHeartRepository(db)
	reactionRepo := repositories.NewPostgresReactionRepository(db)

	// --- Initialize services ---
	tokenIssuer := services.NewTokenIssuer(store, cfg.JWTSecret, cfg.JWTRefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	identityService := services.NewIdentityService(userRepo, tokenIssuer, uploader)
	postService := services.NewPostService(postRepo, heartRepo, reactionRepo, uploader, cfg.DeleteRequiresOwner)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(identityService)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(tokenIssuer))
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	// User profile routes
	userHandler := handlers.NewUserHandler(identityService)
	userHandler.RegisterUserRoutes(api)
	log.Println("User profile routes configured.")

	// Feed routes (registered before /posts/:id so the path does not collide)
	feedHandler := handlers.NewFeedHandler(postService)
	feedHandler.RegisterFeedRoutes(api)
	log.Println("Feed routes configured.")

	// Post routes
	postHandler := handlers.NewPostHandler(postService)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	log.Println("All routes configured.")
}
