// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache backed by go-cache
// - cache/redis: Redis cache backed by go-redis
// - cache/sqlite: SQLite cache for single-node persistence
// - http/standard: HTTP client with backoff retries and credential interceptors
// - http/cached: Decorator that serves repeated fetches from a cache
// - logger/standard: Structured logger backed by logrus
//
// # HTTP Client
//
//	interceptors, err := standard.CredentialInterceptors("user", "secret", "")
//	client := standard.NewStandardHTTPClient(30*time.Second,
//	    standard.WithInterceptors(interceptors...),
//	    standard.WithMaxRetries(3),
//	)
//
//	resp, err := client.Get(ctx, "https://example.org/rsd.xml")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Caching fetches
//
//	fetcher := cached.NewClient(client, memory.NewMemoryCache(), 10*time.Minute, logger)
//
// # Logger
//
//	logger := standard.NewLogger(standard.Options{Level: "debug", Format: "text"})
//	logger.Info("Discovering package sources", map[string]interface{}{
//	    "url": "https://example.org/",
//	})
package infrastructure
