// ABOUTME: Main entry point for the package source discovery API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MyGet/PackageSourceDiscovery/api"
	"github.com/MyGet/PackageSourceDiscovery/api/handlers"
	stdlogger "github.com/MyGet/PackageSourceDiscovery/infrastructure/logger/standard"
	"github.com/MyGet/PackageSourceDiscovery/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := stdlogger.NewLogger(stdlogger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	logger.Info("Starting package source discovery API", map[string]interface{}{
		"port":        cfg.Server.Port,
		"cache_type":  cfg.Cache.Type,
		"max_depth":   cfg.Discovery.MaxDepth,
		"concurrency": cfg.Discovery.Concurrency,
	})

	cache, closeCache, err := newCache(cfg.Cache)
	if err != nil {
		logger.Error("Failed to create cache, continuing without one", map[string]interface{}{
			"cache_type": cfg.Cache.Type,
			"error":      err.Error(),
		})
	}
	defer func() {
		if err := closeCache(); err != nil {
			logger.Warn("Failed to close cache", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	humaAPI, router, stopLimiter := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.RateLimit.Requests,
		RateWindow: cfg.RateLimit.Window,
	})
	defer stopLimiter()

	factory := newDiscovererFactory(cfg.Discovery, cache, cfg.Cache.TTL, logger)
	handlers.NewDiscoverHandler(factory, cfg.Discovery.Concurrency, logger).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(api.Version).RegisterRoutes(humaAPI)

	// WriteTimeout leaves room for a full-depth discovery of every seed
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Server stopped", nil)
}
