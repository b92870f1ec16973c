// ABOUTME: Endpoint selection rules shared by the discovery engine and its consumers
// ABOUTME: Picks the preferred endpoint for a capability while keeping document order stable

package domain

// SelectEndpoint returns the best endpoint of doc whose name is one of tags.
// A preferred endpoint wins over a non-preferred one; among equals the one
// listed first wins. Returns nil when no endpoint matches.
func SelectEndpoint(doc *DiscoveryDocument, tags ...string) *Endpoint {
	if doc == nil {
		return nil
	}

	var best *Endpoint
	for _, endpoint := range doc.Endpoints {
		if endpoint == nil || !hasTag(tags, endpoint.Name) {
			continue
		}
		if endpoint.Preferred {
			return endpoint
		}
		if best == nil {
			best = endpoint
		}
	}
	return best
}

func hasTag(tags []string, name string) bool {
	for _, tag := range tags {
		if tag == name {
			return true
		}
	}
	return false
}

// PackageEndpoint returns the endpoint used to read packages
func (d *DiscoveryDocument) PackageEndpoint() *Endpoint {
	return SelectEndpoint(d, PackagesV1, PackagesV2)
}

// PushEndpoint returns the endpoint used to push packages
func (d *DiscoveryDocument) PushEndpoint() *Endpoint {
	return SelectEndpoint(d, PushV1, PushV2)
}

// AsPackageSource converts the document into a package source named after
// the document title. Returns nil when the document has no package endpoint.
func (d *DiscoveryDocument) AsPackageSource() *PackageSource {
	endpoint := d.PackageEndpoint()
	if endpoint == nil {
		return nil
	}
	return &PackageSource{
		Name:   d.Title,
		Source: endpoint.APILink,
	}
}

// APIKey returns the push API key advertised by the document, if any
func (d *DiscoveryDocument) APIKey() (string, bool) {
	endpoint := d.PushEndpoint()
	if endpoint == nil {
		return "", false
	}
	key, ok := endpoint.Settings[APIKeySetting]
	return key, ok
}
