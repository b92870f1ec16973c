// ABOUTME: Request DTOs for the discovery endpoint
// ABOUTME: Seeds, optional credentials and the caller's existing package sources

package requests

import "strings"

// PackageSourceRequest is a package source the caller already has configured
type PackageSourceRequest struct {
	Name   string `json:"name" minLength:"1" doc:"Package source name"`
	Source string `json:"source" minLength:"1" doc:"Package source URL"`
}

// DiscoverRequest represents the request body for discovering package sources
type DiscoverRequest struct {
	// URLs are the seed URLs, discovered independently of each other
	URLs []string `json:"urls" maxItems:"50" doc:"Seed URLs to discover package sources from"`

	// Title names feed documents that carry no title of their own
	Title string `json:"title,omitempty" doc:"Fallback title for discovered feeds"`

	Username string `json:"username,omitempty" doc:"User name for basic authentication"`
	Password string `json:"password,omitempty" doc:"Password for basic authentication"`
	APIKey   string `json:"apiKey,omitempty" doc:"API key sent with every discovery request"`

	// ExistingSources are merged with the discovered ones; names already
	// present are never replaced.
	ExistingSources []PackageSourceRequest `json:"existingSources,omitempty" doc:"Package sources already configured by the caller"`
}

// Normalize trims whitespace from seed URLs and credentials
func (r *DiscoverRequest) Normalize() {
	for i, u := range r.URLs {
		r.URLs[i] = strings.TrimSpace(u)
	}
	r.Title = strings.TrimSpace(r.Title)
	r.Username = strings.TrimSpace(r.Username)
	r.APIKey = strings.TrimSpace(r.APIKey)
}
