// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MyGet/PackageSourceDiscovery/api/middleware"
	"github.com/MyGet/PackageSourceDiscovery/core/interfaces"
)

const (
	// Title is the API title published in the OpenAPI document
	Title = "Package Source Discovery API"

	// Version is the API version published in the OpenAPI document
	Version = "1.0.0"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger     interfaces.Logger
	RateLimit  int           // requests per window
	RateWindow time.Duration // rate limit window
}

func newRouter() chi.Router {
	router := chi.NewRouter()

	// CORS goes first so preflight requests never hit the rate limiter
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(chimiddleware.Recoverer)

	return router
}

func newHumaConfig() huma.Config {
	config := huma.DefaultConfig(Title, Version)
	config.Info.Description = "Discovers NuGet package sources from web pages, RSD, NFD and service documents"
	return config
}

// NewAPI creates and configures a new Huma API instance.
// The OpenAPI document is served at /openapi.json and the docs UI at /docs.
func NewAPI() (huma.API, chi.Router) {
	router := newRouter()
	return humachi.New(router, newHumaConfig()), router
}

// NewAPIWithMiddleware creates a new API with middleware configured.
// The returned stop func releases the rate limiter's background cleanup.
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router, func()) {
	router := newRouter()
	stop := func() {}

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
		stop = limiter.Stop
	}

	return humachi.New(router, newHumaConfig()), router, stop
}
