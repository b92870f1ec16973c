// Package core contains the package source discovery engine.
// It is framework-agnostic and can be used without the HTTP API.
//
// The core package is organized into several sub-packages:
//
// - domain: Discovery documents, endpoints, package sources and endpoint selection
// - discovery: The discovery service and its format parsers (HTML, service document, RSD, NFD)
// - sources: Merging discovered documents into an existing package source list
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (HTTP, cache, logger)
//
// # Usage Example
//
//	import (
//	    "github.com/MyGet/PackageSourceDiscovery/core/discovery"
//	    "github.com/MyGet/PackageSourceDiscovery/core/interfaces"
//	)
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	service := discovery.NewService(deps, discovery.WithMaxDepth(4))
//
//	documents, err := service.Discover(ctx, "https://www.myget.org/gallery/", "")
//	for _, doc := range documents {
//	    if source := doc.AsPackageSource(); source != nil {
//	        fmt.Println(source.Name, source.Source)
//	    }
//	}
package core
