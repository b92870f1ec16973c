// ABOUTME: Response DTOs for the discovery endpoint
// ABOUTME: Per-seed results in request order plus the merged package source list

package responses

// Result statuses reported per seed URL
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// EndpointResponse is one endpoint of a discovery document
type EndpointResponse struct {
	Name      string            `json:"name" doc:"Capability tag, e.g. nuget-v2-packages"`
	APILink   string            `json:"apiLink" doc:"Absolute endpoint URL"`
	Preferred bool              `json:"preferred" doc:"Whether the source prefers this endpoint"`
	Settings  map[string]string `json:"settings,omitempty" doc:"Endpoint settings such as apiKey"`
}

// DocumentResponse is one discovered package source description
type DocumentResponse struct {
	EngineName   string             `json:"engineName,omitempty"`
	EngineLink   string             `json:"engineLink,omitempty"`
	HomePageLink string             `json:"homePageLink,omitempty"`
	Identifier   string             `json:"identifier,omitempty"`
	Owner        string             `json:"owner,omitempty"`
	Creator      string             `json:"creator,omitempty"`
	Title        string             `json:"title,omitempty"`
	Description  string             `json:"description,omitempty"`
	Endpoints    []EndpointResponse `json:"endpoints" doc:"Endpoints in document order"`
}

// PackageSourceResponse is a named package feed
type PackageSourceResponse struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

// DiscoverResult is the outcome for a single seed URL
type DiscoverResult struct {
	URL            string                  `json:"url" doc:"Seed URL as requested"`
	Status         string                  `json:"status" enum:"ok,error" doc:"Discovery status"`
	Error          string                  `json:"error,omitempty" doc:"Error message if discovery failed"`
	ErrorType      string                  `json:"errorType,omitempty" doc:"Error category if discovery failed"`
	Documents      []DocumentResponse      `json:"documents" doc:"Discovered documents in discovery order"`
	PackageSources []PackageSourceResponse `json:"packageSources" doc:"Package sources derived from the documents"`
}

// DiscoverResponse is the body returned by POST /discover
type DiscoverResponse struct {
	Results []DiscoverResult        `json:"results" doc:"One result per seed URL, in request order"`
	Sources []PackageSourceResponse `json:"sources" doc:"Existing sources followed by newly discovered ones"`
	Added   int                     `json:"added" doc:"Number of sources added to the existing list"`
	APIKeys map[string]string       `json:"apiKeys" doc:"Push API keys keyed by source URL"`
}

// HealthResponse is the body returned by GET /health
type HealthResponse struct {
	Status  string `json:"status" doc:"Service status"`
	Version string `json:"version,omitempty" doc:"Service version"`
}
