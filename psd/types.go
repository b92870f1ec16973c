// ABOUTME: Public types for the package source discovery library
// ABOUTME: Re-exports the discovery domain model so callers need a single import

package psd

import (
	"github.com/MyGet/PackageSourceDiscovery/core/domain"
	"github.com/MyGet/PackageSourceDiscovery/core/sources"
)

// Document describes one discovered package source
type Document = domain.DiscoveryDocument

// Endpoint is a named access point within a Document
type Endpoint = domain.Endpoint

// PackageSource is a named feed URL
type PackageSource = domain.PackageSource

// MergeResult is the outcome of DiscoverSources
type MergeResult = sources.MergeResult

// Capability tags found on endpoints
const (
	PackagesV1 = domain.PackagesV1
	PackagesV2 = domain.PackagesV2
	PushV1     = domain.PushV1
	PushV2     = domain.PushV2
)

// SelectEndpoint returns the preferred endpoint of doc matching one of tags
func SelectEndpoint(doc *Document, tags ...string) *Endpoint {
	return domain.SelectEndpoint(doc, tags...)
}
