package discovery

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/MyGet/PackageSourceDiscovery/core/domain"
	coreerrors "github.com/MyGet/PackageSourceDiscovery/core/errors"
	"github.com/MyGet/PackageSourceDiscovery/core/interfaces"
)

const nugetRel = "nuget"

type followFunc func(ctx context.Context, target *url.URL, title string, chain []string) ([]*domain.DiscoveryDocument, error)

// htmlParser scans a page for <link rel="nuget"> elements and discovers
// each linked document in turn
type htmlParser struct {
	follow followFunc
	logger interfaces.Logger
}

func (p *htmlParser) Name() string { return "html" }

func (p *htmlParser) Accepts(string) bool { return true }

func (p *htmlParser) Parse(ctx context.Context, src *source) ([]*domain.DiscoveryDocument, error) {
	page, err := goquery.NewDocumentFromReader(strings.NewReader(src.body))
	if err != nil {
		return nil, &coreerrors.MalformedDocumentError{Format: p.Name(), URI: src.uri.String(), Err: err}
	}

	documents := []*domain.DiscoveryDocument{}
	var followErr error

	page.Find("link[href]").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		rel, _ := link.Attr("rel")
		if !strings.Contains(strings.ToLower(rel), nugetRel) {
			return true
		}

		href, _ := link.Attr("href")
		target, err := resolveReference(src.uri, href)
		if err != nil {
			p.logger.Warn("Skipping unresolvable link", map[string]interface{}{
				"url":   src.uri.String(),
				"href":  href,
				"error": err.Error(),
			})
			return true
		}

		key := normalizeURI(target)
		if onChain(src.chain, key) {
			p.logger.Warn("Skipping link cycle", map[string]interface{}{
				"url":  src.uri.String(),
				"link": target.String(),
			})
			return true
		}

		title := src.title
		if linkTitle, ok := link.Attr("title"); ok && linkTitle != "" {
			title = linkTitle
		}

		chain := append(src.chain[:len(src.chain):len(src.chain)], key)
		found, err := p.follow(ctx, target, title, chain)
		if err != nil {
			followErr = err
			return false
		}
		documents = append(documents, found...)
		return true
	})

	if followErr != nil {
		return nil, followErr
	}
	return documents, nil
}

func onChain(chain []string, key string) bool {
	for _, visited := range chain {
		if visited == key {
			return true
		}
	}
	return false
}
