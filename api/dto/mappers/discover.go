// ABOUTME: Mappers between discovery domain models and API DTOs
// ABOUTME: Keeps the JSON surface separate from the core types

package mappers

import (
	"github.com/MyGet/PackageSourceDiscovery/api/dto/requests"
	"github.com/MyGet/PackageSourceDiscovery/api/dto/responses"
	"github.com/MyGet/PackageSourceDiscovery/core/domain"
)

// ToDocumentResponse converts a domain DiscoveryDocument to its DTO
func ToDocumentResponse(doc *domain.DiscoveryDocument) *responses.DocumentResponse {
	if doc == nil {
		return nil
	}

	response := &responses.DocumentResponse{
		EngineName:   doc.EngineName,
		EngineLink:   doc.EngineLink,
		HomePageLink: doc.HomePageLink,
		Identifier:   doc.Identifier,
		Owner:        doc.Owner,
		Creator:      doc.Creator,
		Title:        doc.Title,
		Description:  doc.Description,
		Endpoints:    make([]responses.EndpointResponse, 0, len(doc.Endpoints)),
	}

	for _, endpoint := range doc.Endpoints {
		if endpoint == nil {
			continue
		}
		response.Endpoints = append(response.Endpoints, responses.EndpointResponse{
			Name:      endpoint.Name,
			APILink:   endpoint.APILink,
			Preferred: endpoint.Preferred,
			Settings:  endpoint.Settings,
		})
	}

	return response
}

// ToDocumentResponses converts documents, keeping their order
func ToDocumentResponses(docs []*domain.DiscoveryDocument) []responses.DocumentResponse {
	result := make([]responses.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		if response := ToDocumentResponse(doc); response != nil {
			result = append(result, *response)
		}
	}
	return result
}

// ToPackageSourceResponses converts package sources to DTOs
func ToPackageSourceResponses(sources []domain.PackageSource) []responses.PackageSourceResponse {
	result := make([]responses.PackageSourceResponse, 0, len(sources))
	for _, source := range sources {
		result = append(result, responses.PackageSourceResponse{
			Name:   source.Name,
			Source: source.Source,
		})
	}
	return result
}

// DocumentSources returns the package source of every document that has one
func DocumentSources(docs []*domain.DiscoveryDocument) []responses.PackageSourceResponse {
	result := make([]responses.PackageSourceResponse, 0, len(docs))
	for _, doc := range docs {
		if source := doc.AsPackageSource(); source != nil {
			result = append(result, responses.PackageSourceResponse{
				Name:   source.Name,
				Source: source.Source,
			})
		}
	}
	return result
}

// FromPackageSourceRequests converts request sources to domain values
func FromPackageSourceRequests(sources []requests.PackageSourceRequest) []domain.PackageSource {
	result := make([]domain.PackageSource, 0, len(sources))
	for _, source := range sources {
		result = append(result, domain.PackageSource{
			Name:   source.Name,
			Source: source.Source,
		})
	}
	return result
}
