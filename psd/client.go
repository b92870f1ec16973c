// ABOUTME: Main client for the discovery library
// ABOUTME: Discovers package sources from a URL without any HTTP server dependencies

package psd

import (
	"context"

	"github.com/MyGet/PackageSourceDiscovery/core/discovery"
	"github.com/MyGet/PackageSourceDiscovery/core/interfaces"
	"github.com/MyGet/PackageSourceDiscovery/core/sources"
)

// Client is the main entry point for the discovery library
type Client struct {
	service *discovery.Service
}

// NewClient creates a new client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	httpClient, err := buildHTTPClient(&config)
	if err != nil {
		return nil, err
	}

	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     config.Logger,
	}

	return &Client{
		service: discovery.NewService(deps, discovery.WithMaxDepth(config.MaxDepth)),
	}, nil
}

// Discover returns every discovery document reachable from url, in
// discovery order. Errors are of type *Error.
func (c *Client) Discover(ctx context.Context, url string) ([]*Document, error) {
	return c.DiscoverTitled(ctx, url, "")
}

// DiscoverTitled is Discover with a title for feeds that carry none
func (c *Client) DiscoverTitled(ctx context.Context, url, title string) ([]*Document, error) {
	documents, err := c.service.Discover(ctx, url, title)
	if err != nil {
		return nil, wrapDiscoveryError(err, url)
	}
	return documents, nil
}

// DiscoverSources discovers url and merges the resulting package sources
// into existing. Sources already present by name are kept as they are.
func (c *Client) DiscoverSources(ctx context.Context, url string, existing []PackageSource) (*MergeResult, error) {
	documents, err := c.Discover(ctx, url)
	if err != nil {
		return nil, err
	}

	result := sources.Merge(existing, documents)
	return &result, nil
}

// MaxDepth returns the recursion limit in effect
func (c *Client) MaxDepth() int {
	return c.service.MaxDepth()
}
