// Package api provides the HTTP API layer for package source discovery.
// It uses the Huma framework on a chi router for OpenAPI documentation
// and request/response validation.
//
// # Architecture
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: Request IDs, request logging and rate limiting
//
// # Endpoints
//
//   - POST /discover discovers every seed URL and merges the results
//   - GET /health reports liveness
//   - GET /openapi.json and /docs serve the generated OpenAPI document
//
// # Usage Example
//
//	humaAPI, router, stop := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  60,
//	    RateWindow: time.Minute,
//	})
//	defer stop()
//
//	handlers.NewDiscoverHandler(factory, 4, logger).RegisterRoutes(humaAPI)
//	handlers.NewHealthHandler(api.Version).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Request-level failures use RFC 7807 problem details. A failure to discover
// one seed does not fail the request; it is reported on that seed's result
// with an error category.
package api
