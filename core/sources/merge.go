// ABOUTME: Merges discovered documents into an existing list of package sources
// ABOUTME: Existing sources are never overwritten; push API keys are collected per source

package sources

import (
	"strings"

	"github.com/MyGet/PackageSourceDiscovery/core/domain"
)

// MergeResult is the outcome of merging discovery documents into a source list
type MergeResult struct {
	// Sources is the existing list followed by newly added sources
	Sources []domain.PackageSource

	// Added counts sources appended by this merge
	Added int

	// APIKeys maps a source URI to the push API key its document advertised
	APIKeys map[string]string
}

// Merge appends one package source per document, in document order.
// A document is skipped when a source with the same name already exists
// (case-insensitive) or when it has no package endpoint.
func Merge(existing []domain.PackageSource, documents []*domain.DiscoveryDocument) MergeResult {
	result := MergeResult{
		Sources: make([]domain.PackageSource, 0, len(existing)+len(documents)),
		APIKeys: make(map[string]string),
	}
	result.Sources = append(result.Sources, existing...)

	for _, document := range documents {
		if document == nil || hasSource(result.Sources, document.Title) {
			continue
		}

		source := document.AsPackageSource()
		if source == nil {
			continue
		}
		result.Sources = append(result.Sources, *source)
		result.Added++

		if key, ok := document.APIKey(); ok {
			result.APIKeys[source.Source] = key
		}
	}
	return result
}

func hasSource(sources []domain.PackageSource, name string) bool {
	for _, source := range sources {
		if strings.EqualFold(source.Name, name) {
			return true
		}
	}
	return false
}
