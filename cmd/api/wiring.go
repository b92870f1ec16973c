// ABOUTME: Builds the runtime components selected by configuration
// ABOUTME: Cache backend selection and the per-request discovery client factory

package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MyGet/PackageSourceDiscovery/api/handlers"
	"github.com/MyGet/PackageSourceDiscovery/api/middleware"
	"github.com/MyGet/PackageSourceDiscovery/core/interfaces"
	"github.com/MyGet/PackageSourceDiscovery/infrastructure/cache/memory"
	"github.com/MyGet/PackageSourceDiscovery/infrastructure/cache/redis"
	"github.com/MyGet/PackageSourceDiscovery/infrastructure/cache/sqlite"
	"github.com/MyGet/PackageSourceDiscovery/pkg/config"
	"github.com/MyGet/PackageSourceDiscovery/psd"
)

// newCache returns the fetch cache for cfg, or nil when caching is off.
// The returned close func is never nil.
func newCache(cfg config.CacheConfig) (interfaces.Cache, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Type {
	case config.CacheNone, "":
		return nil, noop, nil
	case config.CacheMemory:
		return memory.NewMemoryCache(), noop, nil
	case config.CacheRedis:
		cache, err := redis.NewRedisCache(cfg.Redis)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create redis cache: %w", err)
		}
		return cache, cache.Close, nil
	case config.CacheSQLite:
		cache, err := sqlite.NewSQLiteCache(cfg.SQLite.Path)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create sqlite cache: %w", err)
		}
		return cache, cache.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown cache type %q", cfg.Type)
	}
}

// titledDiscoverer adapts a library client to the handler's Discoverer
type titledDiscoverer struct {
	client *psd.Client
}

func (d titledDiscoverer) Discover(ctx context.Context, uri, title string) ([]*psd.Document, error) {
	return d.client.DiscoverTitled(ctx, uri, title)
}

// newDiscovererFactory builds one discovery client per API request so each
// request fetches with its own credentials
func newDiscovererFactory(cfg config.DiscoveryConfig, cache interfaces.Cache, ttl time.Duration, logger interfaces.Logger) handlers.DiscovererFactory {
	transport := &middleware.LoggingRoundTripper{
		Transport: http.DefaultTransport,
		Logger:    logger,
	}

	return func(creds handlers.Credentials) (handlers.Discoverer, error) {
		opts := []psd.Option{
			psd.WithLogger(logger),
			psd.WithMaxDepth(cfg.MaxDepth),
			psd.WithTimeout(cfg.FetchTimeout),
			psd.WithUserAgent(cfg.UserAgent),
			psd.WithRetries(cfg.Retries),
			psd.WithTransport(transport),
			psd.WithCredentials(creds.Username, creds.Password),
			psd.WithAPIKey(creds.APIKey),
		}
		if cache != nil {
			opts = append(opts, psd.WithCache(cache, ttl))
		}

		client, err := psd.NewClient(opts...)
		if err != nil {
			return nil, err
		}
		return titledDiscoverer{client: client}, nil
	}
}
