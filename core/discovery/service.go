// ABOUTME: Discovery service finds package sources reachable from a seed URL
// ABOUTME: Runs the format cascade over fetched content and follows nuget links recursively

package discovery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/MyGet/PackageSourceDiscovery/core/domain"
	coreerrors "github.com/MyGet/PackageSourceDiscovery/core/errors"
	"github.com/MyGet/PackageSourceDiscovery/core/interfaces"
)

// DefaultMaxDepth bounds how many links deep discovery follows from the seed
const DefaultMaxDepth = 8

// Service discovers package sources
type Service struct {
	deps     interfaces.Dependencies
	maxDepth int
	parsers  []formatParser
}

// Option configures a Service
type Option func(*Service)

// WithMaxDepth sets how many links deep discovery may recurse.
// Values below zero are ignored.
func WithMaxDepth(depth int) Option {
	return func(s *Service) {
		if depth >= 0 {
			s.maxDepth = depth
		}
	}
}

// NewService creates a new discovery service instance
func NewService(deps interfaces.Dependencies, opts ...Option) *Service {
	if deps.Logger == nil {
		deps.Logger = noopLogger{}
	}

	s := &Service{
		deps:     deps,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Priority order matters: the first parser with a non-empty result wins.
	s.parsers = []formatParser{
		&htmlParser{follow: s.follow, logger: deps.Logger},
		serviceDocumentParser{},
		rsdParser{},
		nfdParser{},
	}
	return s
}

// MaxDepth returns the configured recursion limit
func (s *Service) MaxDepth() int {
	return s.maxDepth
}

// ValidateSeedURL checks that rawURL is a usable absolute seed URL
func ValidateSeedURL(rawURL string) (*url.URL, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, &coreerrors.ValidationError{Field: "uri", Message: "URL cannot be empty"}
	}

	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, &coreerrors.ValidationError{Field: "uri", Message: "URL is invalid"}
	}
	return u, nil
}

// Discover fetches uri and returns every discovery document reachable from it,
// in the order their originating links and elements appear. title, when not
// empty, names documents that carry no title of their own.
func (s *Service) Discover(ctx context.Context, uri, title string) ([]*domain.DiscoveryDocument, error) {
	seed, err := ValidateSeedURL(uri)
	if err != nil {
		return nil, err
	}

	s.deps.Logger.Info("Discovering package sources", map[string]interface{}{
		"url":       seed.String(),
		"max_depth": s.maxDepth,
	})

	documents, err := s.discover(ctx, seed, title, []string{normalizeURI(seed)})
	if err != nil {
		s.deps.Logger.Error("Discovery failed", map[string]interface{}{
			"url":   seed.String(),
			"error": err.Error(),
		})
		return nil, err
	}

	s.deps.Logger.Info("Discovery completed", map[string]interface{}{
		"url":       seed.String(),
		"documents": len(documents),
	})
	return documents, nil
}

// follow is the recursion entry used by the HTML parser. chain holds the
// normalized URIs from the seed down to target, target included.
func (s *Service) follow(ctx context.Context, target *url.URL, title string, chain []string) ([]*domain.DiscoveryDocument, error) {
	if len(chain)-1 > s.maxDepth {
		return nil, coreerrors.WrapError(coreerrors.ErrMaxDepthExceeded, target.String())
	}
	return s.discover(ctx, target, title, chain)
}

func (s *Service) discover(ctx context.Context, target *url.URL, title string, chain []string) ([]*domain.DiscoveryDocument, error) {
	body, err := s.fetch(ctx, target.String())
	if err != nil {
		return nil, err
	}

	src := &source{
		uri:   target,
		title: title,
		body:  body,
		chain: chain,
	}

	for _, parser := range s.parsers {
		if !parser.Accepts(body) {
			continue
		}

		documents, err := parser.Parse(ctx, src)
		if err != nil {
			return nil, err
		}
		if len(documents) > 0 {
			s.deps.Logger.Debug("Matched discovery format", map[string]interface{}{
				"url":       target.String(),
				"format":    parser.Name(),
				"documents": len(documents),
				"depth":     len(chain) - 1,
			})
			return documents, nil
		}
	}

	s.deps.Logger.Debug("No discovery format matched", map[string]interface{}{
		"url": target.String(),
	})
	return []*domain.DiscoveryDocument{}, nil
}

// fetch reads the body at uri as text. Transport errors are returned unchanged.
func (s *Service) fetch(ctx context.Context, uri string) (string, error) {
	if s.deps.HTTPClient == nil {
		return "", errors.New("HTTP client not configured")
	}

	s.deps.Logger.Debug("Fetching discovery document", map[string]interface{}{
		"url": uri,
	})

	resp, err := s.deps.HTTPClient.Get(ctx, uri)
	if err != nil {
		return "", err
	}

	body := resp.Body()
	defer body.Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return "", &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    http.StatusText(resp.StatusCode()),
			API:        uri,
		}
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("failed to read response from %s: %w", uri, err)
	}
	return string(data), nil
}

type noopLogger struct{}

func (noopLogger) Debug(string, map[string]interface{}) {}
func (noopLogger) Info(string, map[string]interface{})  {}
func (noopLogger) Warn(string, map[string]interface{})  {}
func (noopLogger) Error(string, map[string]interface{}) {}
