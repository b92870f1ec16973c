// ABOUTME: Discovery domain model describes package sources found at a seed URI
// ABOUTME: Documents carry descriptive metadata plus an ordered list of capability endpoints

package domain

// Capability tags understood by the endpoint selector. The values match what
// RSD and NFD documents publish in their api/feed entries.
const (
	PackagesV1 = "nuget-v1-packages"
	PackagesV2 = "nuget-v2-packages"
	PushV1     = "nuget-v1-push"
	PushV2     = "nuget-v2-push"
)

// APIKeySetting is the endpoint setting that carries a push API key
const APIKeySetting = "apiKey"

// Engine metadata stamped on documents that are synthesized from a bare feed
// URL rather than read from an RSD document.
const (
	DefaultEngineName = "NuGet Core"
	DefaultEngineLink = "http://www.nuget.org"
)

// DiscoveryDocument describes one discovered package source.
// All text fields are optional; an empty string means the source did not
// provide the value.
type DiscoveryDocument struct {
	EngineName   string
	EngineLink   string
	HomePageLink string
	Identifier   string
	Owner        string
	Creator      string
	Title        string
	Description  string

	// Endpoints keeps the order in which the source listed them.
	// A document without endpoints is valid.
	Endpoints []*Endpoint
}

// Endpoint is a named access point within a discovery document
type Endpoint struct {
	// Name is the capability tag, e.g. PackagesV2
	Name string

	// APILink is always absolute
	APILink string

	Preferred bool

	// Settings carries out-of-band values such as an API key
	Settings map[string]string
}

// PackageSource is a named feed URI derived from a discovery document
type PackageSource struct {
	Name   string
	Source string
}

// NewEndpoint creates an endpoint with an empty settings map
func NewEndpoint(name, apiLink string, preferred bool) *Endpoint {
	return &Endpoint{
		Name:      name,
		APILink:   apiLink,
		Preferred: preferred,
		Settings:  make(map[string]string),
	}
}

// NewFeedDocument synthesizes a document for a bare package feed.
// The feed becomes the single, preferred PackagesV2 endpoint.
func NewFeedDocument(title, feedURL string) *DiscoveryDocument {
	return &DiscoveryDocument{
		EngineName:  DefaultEngineName,
		EngineLink:  DefaultEngineLink,
		Title:       title,
		Description: title,
		Endpoints: []*Endpoint{
			NewEndpoint(PackagesV2, feedURL, true),
		},
	}
}
