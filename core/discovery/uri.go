package discovery

import (
	"net/url"
	"strings"
)

// resolveReference resolves ref against base. An absolute ref is returned as is.
func resolveReference(base *url.URL, ref string) (*url.URL, error) {
	parsed, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return nil, err
	}
	return base.ResolveReference(parsed), nil
}

// normalizeURI returns the key used to detect link cycles
func normalizeURI(u *url.URL) string {
	n := *u
	n.Scheme = strings.ToLower(n.Scheme)
	n.Host = strings.ToLower(n.Host)
	n.Fragment = ""
	n.RawFragment = ""
	if n.Path == "" {
		n.Path = "/"
		n.RawPath = ""
	}
	return n.String()
}
