package routes

import (
	"time"

	"github.com/craftlister/craftlister-api/internal/config"
	"github.com/craftlister/craftlister-api/internal/presentation/http/handler"
	"github.com/craftlister/craftlister-api/internal/presentation/http/middleware"
	"github.com/craftlister/craftlister-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Settings *handler.SettingsHandler
	Etsy     *handler.EtsyHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	api := router.Group("/api")
	{
		// Public routes (no authentication required)
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// The OAuth callback arrives as a browser redirect from Etsy and
		// carries no bearer token; the state parameter identifies the user.
		api.GET("/etsy/callback", h.Etsy.Callback)

		// Protected routes (authentication required)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		protected.GET("/profile", h.Auth.GetProfile)

		protected.GET("/settings", h.Settings.GetSettings)
		protected.POST("/settings", h.Settings.SaveSettings)

		protected.GET("/etsy/status", h.Etsy.GetStatus)
		protected.GET("/etsy/connect", h.Etsy.Connect)
		protected.DELETE("/etsy/disconnect", h.Etsy.Disconnect)
	}

	return router
}
