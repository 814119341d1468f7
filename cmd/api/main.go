package main

import (
	"log"

	"github.com/craftlister/craftlister-api/internal/application/service"
	"github.com/craftlister/craftlister-api/internal/config"
	"github.com/craftlister/craftlister-api/internal/infrastructure/database"
	"github.com/craftlister/craftlister-api/internal/infrastructure/repository"
	"github.com/craftlister/craftlister-api/internal/presentation/http/handler"
	"github.com/craftlister/craftlister-api/internal/presentation/http/routes"
	"github.com/craftlister/craftlister-api/pkg/oauth"
	"github.com/craftlister/craftlister-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	etsyConnRepo := repository.NewEtsyConnectionRepository(db)

	// Initialize Etsy OAuth service
	etsyOAuth := oauth.NewEtsyOAuthService(oauth.EtsyOAuthConfig{
		APIKey:       cfg.Etsy.APIKey,
		SharedSecret: cfg.Etsy.SharedSecret,
		RedirectURL:  cfg.Etsy.RedirectURL,
	})
	if !etsyOAuth.IsConfigured() {
		log.Println("Warning: Etsy API credentials not configured, shop connection disabled")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	settingsService := service.NewSettingsService(settingsRepo)
	etsyService := service.NewEtsyService(etsyConnRepo, etsyOAuth, jwtManager)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Settings: handler.NewSettingsHandler(settingsService),
		Etsy:     handler.NewEtsyHandler(etsyService, cfg.Etsy.FrontendURL),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
