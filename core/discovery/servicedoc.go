package discovery

import (
	"context"

	"github.com/MyGet/PackageSourceDiscovery/core/domain"
	coreerrors "github.com/MyGet/PackageSourceDiscovery/core/errors"
)

// serviceDocumentParser treats an OData/AtomPub service document as a single
// package feed located at the fetched URI
type serviceDocumentParser struct{}

func (serviceDocumentParser) Name() string { return "service" }

func (serviceDocumentParser) Accepts(body string) bool { return withoutHTML(body) }

func (p serviceDocumentParser) Parse(_ context.Context, src *source) ([]*domain.DiscoveryDocument, error) {
	doc, err := src.xml()
	if err != nil {
		return nil, &coreerrors.MalformedDocumentError{Format: p.Name(), URI: src.uri.String(), Err: err}
	}

	// Namespace is ignored for service documents.
	if root := rootElement(doc); root.Data != "service" {
		return nil, nil
	}

	title := src.title
	if title == "" {
		title = src.uri.RequestURI()
	}
	return []*domain.DiscoveryDocument{
		domain.NewFeedDocument(title, src.uri.String()),
	}, nil
}
