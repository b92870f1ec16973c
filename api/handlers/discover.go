// ABOUTME: Discover handler finds package sources reachable from seed URLs
// ABOUTME: Runs one discovery per seed concurrently and merges the results into the caller's sources

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/sync/errgroup"

	"github.com/MyGet/PackageSourceDiscovery/api/dto/mappers"
	"github.com/MyGet/PackageSourceDiscovery/api/dto/requests"
	"github.com/MyGet/PackageSourceDiscovery/api/dto/responses"
	"github.com/MyGet/PackageSourceDiscovery/core/domain"
	"github.com/MyGet/PackageSourceDiscovery/core/interfaces"
	"github.com/MyGet/PackageSourceDiscovery/core/sources"
)

// DefaultConcurrency bounds how many seeds are discovered at once
const DefaultConcurrency = 4

// Discoverer finds discovery documents reachable from a seed URL
type Discoverer interface {
	Discover(ctx context.Context, uri, title string) ([]*domain.DiscoveryDocument, error)
}

// Credentials are sent with every fetch made for one request
type Credentials struct {
	Username string
	Password string
	APIKey   string
}

// DiscovererFactory builds a Discoverer that fetches with creds.
// It returns a validation error when creds are inconsistent.
type DiscovererFactory func(creds Credentials) (Discoverer, error)

// DiscoverHandler handles package source discovery
type DiscoverHandler struct {
	newDiscoverer DiscovererFactory
	concurrency   int
	logger        interfaces.Logger
}

// NewDiscoverHandler creates a new discover handler. A concurrency below one
// falls back to DefaultConcurrency.
func NewDiscoverHandler(factory DiscovererFactory, concurrency int, logger interfaces.Logger) *DiscoverHandler {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	return &DiscoverHandler{
		newDiscoverer: factory,
		concurrency:   concurrency,
		logger:        logger,
	}
}

// RegisterRoutes registers discover routes
func (h *DiscoverHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "discoverPackageSources",
		Method:      http.MethodPost,
		Path:        "/discover",
		Summary:     "Discover package sources",
		Description: "Follows nuget links, RSD, NFD and service documents from each seed URL and merges the package sources found",
		Tags:        []string{"Discovery"},
	}, h.Discover)
}

// DiscoverInput defines the input for package source discovery
type DiscoverInput struct {
	Body requests.DiscoverRequest
}

// DiscoverOutput defines the output for package source discovery
type DiscoverOutput struct {
	Body responses.DiscoverResponse
}

// Discover handles the POST /discover endpoint
func (h *DiscoverHandler) Discover(ctx context.Context, input *DiscoverInput) (*DiscoverOutput, error) {
	req := input.Body
	req.Normalize()

	if len(req.URLs) == 0 {
		return nil, huma.Error400BadRequest("No URLs provided")
	}

	discoverer, err := h.newDiscoverer(Credentials{
		Username: req.Username,
		Password: req.Password,
		APIKey:   req.APIKey,
	})
	if err != nil {
		return nil, toHumaError(err)
	}

	results := make([]responses.DiscoverResult, len(req.URLs))
	found := make([][]*domain.DiscoveryDocument, len(req.URLs))

	var g errgroup.Group
	g.SetLimit(h.concurrency)
	for i, seed := range req.URLs {
		g.Go(func() error {
			documents, err := discoverer.Discover(ctx, seed, req.Title)
			if err != nil {
				h.logWarn("Seed discovery failed", seed, err)
				results[i] = responses.DiscoverResult{
					URL:            seed,
					Status:         responses.StatusError,
					Error:          err.Error(),
					ErrorType:      errorType(err),
					Documents:      []responses.DocumentResponse{},
					PackageSources: []responses.PackageSourceResponse{},
				}
				return nil
			}

			found[i] = documents
			results[i] = responses.DiscoverResult{
				URL:            seed,
				Status:         responses.StatusOK,
				Documents:      mappers.ToDocumentResponses(documents),
				PackageSources: mappers.DocumentSources(documents),
			}
			return nil
		})
	}
	// Seed failures are reported per result, so Wait never returns an error.
	_ = g.Wait()

	var documents []*domain.DiscoveryDocument
	for _, docs := range found {
		documents = append(documents, docs...)
	}
	merged := sources.Merge(mappers.FromPackageSourceRequests(req.ExistingSources), documents)

	output := &DiscoverOutput{}
	output.Body = responses.DiscoverResponse{
		Results: results,
		Sources: mappers.ToPackageSourceResponses(merged.Sources),
		Added:   merged.Added,
		APIKeys: merged.APIKeys,
	}
	return output, nil
}

func (h *DiscoverHandler) logWarn(msg, seed string, err error) {
	if h.logger == nil {
		return
	}
	h.logger.Warn(msg, map[string]interface{}{
		"url":   seed,
		"error": err.Error(),
	})
}
