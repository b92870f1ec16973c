package discovery

import (
	"context"
	"net/url"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/MyGet/PackageSourceDiscovery/core/domain"
)

// Body markers used to gate the cascade steps. These are substring checks on
// the raw body, not structural ones.
const (
	htmlMarker     = "<html"
	feedListMarker = "<feedList"
)

// formatParser recognizes one discovery format. Parse returns an empty slice
// when the body is not in its format.
type formatParser interface {
	Name() string
	Accepts(body string) bool
	Parse(ctx context.Context, src *source) ([]*domain.DiscoveryDocument, error)
}

// source is one fetched document moving through the cascade
type source struct {
	uri   *url.URL
	title string
	body  string
	chain []string

	tree    *xmlquery.Node
	treeErr error
	parsed  bool
}

// xml parses the body once and shares the tree between XML-based steps
func (s *source) xml() (*xmlquery.Node, error) {
	if !s.parsed {
		s.tree, s.treeErr = parseXML(s.body)
		s.parsed = true
	}
	return s.tree, s.treeErr
}

func withoutHTML(body string) bool {
	return !strings.Contains(body, htmlMarker)
}

func containsFeedList(body string) bool {
	return strings.Contains(body, feedListMarker)
}
