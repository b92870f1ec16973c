package discovery

import (
	"context"

	"github.com/antchfx/xmlquery"

	"github.com/MyGet/PackageSourceDiscovery/core/domain"
	coreerrors "github.com/MyGet/PackageSourceDiscovery/core/errors"
)

const nfdNamespace = "http://nugetext.org/schemas/nuget-feed-discovery/1.0.0"

// nfdParser reads NuGet feed discovery lists, one document per feed
type nfdParser struct{}

func (nfdParser) Name() string { return "nfd" }

func (nfdParser) Accepts(body string) bool {
	return containsFeedList(body)
}

func (p nfdParser) Parse(_ context.Context, src *source) ([]*domain.DiscoveryDocument, error) {
	doc, err := src.xml()
	if err != nil {
		return nil, &coreerrors.MalformedDocumentError{Format: p.Name(), URI: src.uri.String(), Err: err}
	}

	root, ok := matchRoot(doc, nfdNamespace, "feedList")
	if !ok {
		return nil, nil
	}

	var documents []*domain.DiscoveryDocument
	for _, feed := range descendants(root, nfdNamespace, "feed") {
		document, err := p.parseFeed(src, feed)
		if err != nil {
			return nil, err
		}
		documents = append(documents, document)
	}
	return documents, nil
}

func (p nfdParser) parseFeed(src *source, feed *xmlquery.Node) (*domain.DiscoveryDocument, error) {
	name := childText(feed, nfdNamespace, "name")

	urlNode := child(feed, nfdNamespace, "url")
	if urlNode == nil {
		return nil, coreerrors.NewMalformed(p.Name(), src.uri.String(), "feed %q is missing url", name)
	}
	feedURL, err := resolveReference(src.uri, urlNode.InnerText())
	if err != nil {
		return nil, coreerrors.NewMalformed(p.Name(), src.uri.String(), "feed %q has invalid url: %v", name, err)
	}

	document := domain.NewFeedDocument(name, feedURL.String())
	document.Identifier = childText(feed, nfdNamespace, "guid")

	if html := child(feed, nfdNamespace, "htmlUrl"); html != nil {
		if homePage, err := resolveReference(src.uri, html.InnerText()); err == nil {
			document.HomePageLink = homePage.String()
		}
	}
	if push := child(feed, nfdNamespace, "pushUrl"); push != nil {
		pushURL, err := resolveReference(src.uri, push.InnerText())
		if err != nil {
			return nil, coreerrors.NewMalformed(p.Name(), src.uri.String(), "feed %q has invalid pushUrl: %v", name, err)
		}
		document.Endpoints = append(document.Endpoints, domain.NewEndpoint(domain.PushV2, pushURL.String(), false))
	}
	return document, nil
}
