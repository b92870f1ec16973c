package mappers

import (
	"testing"

	"github.com/MyGet/PackageSourceDiscovery/api/dto/requests"
	"github.com/MyGet/PackageSourceDiscovery/core/domain"
)

func sampleDocument() *domain.DiscoveryDocument {
	push := domain.NewEndpoint(domain.PushV2, "http://www.myget.org/F/sample/api/v2/package", true)
	push.Settings[domain.APIKeySetting] = "secret"

	return &domain.DiscoveryDocument{
		EngineName:   "MyGet",
		EngineLink:   "http://www.myget.org",
		HomePageLink: "http://www.myget.org/gallery/sample",
		Identifier:   "sample",
		Title:        "Sample",
		Endpoints: []*domain.Endpoint{
			domain.NewEndpoint(domain.PackagesV2, "http://www.myget.org/F/sample/api/v2", true),
			push,
		},
	}
}

func TestToDocumentResponse(t *testing.T) {
	response := ToDocumentResponse(sampleDocument())

	if response.EngineName != "MyGet" || response.Identifier != "sample" || response.Title != "Sample" {
		t.Errorf("metadata not mapped: %+v", response)
	}
	if len(response.Endpoints) != 2 {
		t.Fatalf("len(Endpoints) = %d, want 2", len(response.Endpoints))
	}
	if response.Endpoints[0].Name != domain.PackagesV2 || !response.Endpoints[0].Preferred {
		t.Errorf("first endpoint = %+v", response.Endpoints[0])
	}
	if response.Endpoints[1].Settings[domain.APIKeySetting] != "secret" {
		t.Errorf("settings not mapped: %+v", response.Endpoints[1].Settings)
	}
}

func TestToDocumentResponse_Nil(t *testing.T) {
	if response := ToDocumentResponse(nil); response != nil {
		t.Errorf("ToDocumentResponse(nil) = %+v, want nil", response)
	}
}

func TestToDocumentResponses_KeepsOrderAndSkipsNil(t *testing.T) {
	first := &domain.DiscoveryDocument{Title: "first"}
	second := &domain.DiscoveryDocument{Title: "second"}

	result := ToDocumentResponses([]*domain.DiscoveryDocument{first, nil, second})

	if len(result) != 2 || result[0].Title != "first" || result[1].Title != "second" {
		t.Errorf("ToDocumentResponses() = %+v", result)
	}
	if result[0].Endpoints == nil {
		t.Error("Endpoints should be an empty slice, not nil")
	}
}

func TestDocumentSources(t *testing.T) {
	docs := []*domain.DiscoveryDocument{
		sampleDocument(),
		{Title: "no endpoints"},
	}

	result := DocumentSources(docs)

	if len(result) != 1 {
		t.Fatalf("len(result) = %d, want 1", len(result))
	}
	if result[0].Name != "Sample" || result[0].Source != "http://www.myget.org/F/sample/api/v2" {
		t.Errorf("DocumentSources() = %+v", result[0])
	}
}

func TestPackageSourceRoundTrip(t *testing.T) {
	in := []requests.PackageSourceRequest{{Name: "nuget.org", Source: "https://www.nuget.org/api/v2/"}}

	sources := FromPackageSourceRequests(in)
	out := ToPackageSourceResponses(sources)

	if len(out) != 1 || out[0].Name != "nuget.org" || out[0].Source != "https://www.nuget.org/api/v2/" {
		t.Errorf("round trip = %+v", out)
	}
}
