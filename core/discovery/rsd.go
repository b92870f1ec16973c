package discovery

import (
	"context"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/MyGet/PackageSourceDiscovery/core/domain"
	coreerrors "github.com/MyGet/PackageSourceDiscovery/core/errors"
)

const (
	rsdNamespace = "http://archipelago.phrasewise.com/rsd"
	dcNamespace  = "http://purl.org/dc/elements/1.1/"
)

// rsdParser reads Really Simple Discovery documents. Each service element
// becomes one discovery document carrying all of its api endpoints.
type rsdParser struct{}

func (rsdParser) Name() string { return "rsd" }

func (rsdParser) Accepts(body string) bool { return withoutHTML(body) }

func (p rsdParser) Parse(_ context.Context, src *source) ([]*domain.DiscoveryDocument, error) {
	doc, err := src.xml()
	if err != nil {
		return nil, &coreerrors.MalformedDocumentError{Format: p.Name(), URI: src.uri.String(), Err: err}
	}

	root, ok := matchRoot(doc, rsdNamespace, "rsd")
	if !ok {
		return nil, nil
	}

	var documents []*domain.DiscoveryDocument
	for _, service := range descendants(root, rsdNamespace, "service") {
		document := &domain.DiscoveryDocument{
			EngineName:   childText(service, rsdNamespace, "engineName"),
			EngineLink:   childText(service, rsdNamespace, "engineLink"),
			HomePageLink: childText(service, rsdNamespace, "homePageLink"),
			Identifier:   childText(service, dcNamespace, "identifier"),
			Owner:        childText(service, dcNamespace, "owner"),
			Creator:      childText(service, dcNamespace, "creator"),
			Title:        childText(service, dcNamespace, "title"),
			Description:  childText(service, dcNamespace, "description"),
			Endpoints:    []*domain.Endpoint{},
		}

		for _, api := range descendants(service, rsdNamespace, "api") {
			endpoint, err := p.parseAPI(src, api)
			if err != nil {
				return nil, err
			}
			document.Endpoints = append(document.Endpoints, endpoint)
		}
		documents = append(documents, document)
	}
	return documents, nil
}

func (p rsdParser) parseAPI(src *source, api *xmlquery.Node) (*domain.Endpoint, error) {
	name, _ := attr(api, "name")

	preferred := false
	if raw, ok := attr(api, "preferred"); ok {
		switch value := strings.TrimSpace(raw); {
		case strings.EqualFold(value, "true"):
			preferred = true
		case strings.EqualFold(value, "false"):
			preferred = false
		default:
			return nil, coreerrors.NewMalformed(p.Name(), src.uri.String(), "api %q has invalid preferred value %q", name, raw)
		}
	}

	rawLink, ok := attr(api, "apiLink")
	if !ok {
		return nil, coreerrors.NewMalformed(p.Name(), src.uri.String(), "api %q is missing apiLink", name)
	}
	link, err := resolveReference(src.uri, rawLink)
	if err != nil {
		return nil, coreerrors.NewMalformed(p.Name(), src.uri.String(), "api %q has invalid apiLink: %v", name, err)
	}

	endpoint := domain.NewEndpoint(name, link.String(), preferred)
	for _, setting := range descendants(api, rsdNamespace, "setting") {
		key, ok := attr(setting, "name")
		if !ok {
			return nil, coreerrors.NewMalformed(p.Name(), src.uri.String(), "setting without name in api %q", name)
		}
		if _, exists := endpoint.Settings[key]; exists {
			return nil, coreerrors.NewMalformed(p.Name(), src.uri.String(), "duplicate setting %q in api %q", key, name)
		}
		endpoint.Settings[key] = setting.InnerText()
	}
	return endpoint, nil
}
