// ABOUTME: Caching decorator for the HTTP client used by discovery
// ABOUTME: Serves repeated fetches of the same URL from a Cache until the TTL expires

package cached

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	coreerrors "github.com/MyGet/PackageSourceDiscovery/core/errors"
	"github.com/MyGet/PackageSourceDiscovery/core/interfaces"
)

const keyPrefix = "fetch:"

// Client wraps an HTTPClient and caches successful response bodies
type Client struct {
	next   interfaces.HTTPClient
	cache  interfaces.Cache
	ttl    time.Duration
	logger interfaces.Logger
}

// NewClient returns a caching client in front of next
func NewClient(next interfaces.HTTPClient, cache interfaces.Cache, ttl time.Duration, logger interfaces.Logger) *Client {
	return &Client{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns a cached body for url when present. Only 200 responses are
// stored; cache failures fall through to the wrapped client.
func (c *Client) Get(ctx context.Context, url string) (interfaces.Response, error) {
	key := keyPrefix + url

	data, err := c.cache.Get(ctx, key)
	if err == nil {
		c.debug("Fetch cache hit", url)
		return newResponse(http.StatusOK, data), nil
	}
	if !errors.Is(err, coreerrors.ErrCacheMiss) {
		c.warn("Fetch cache read failed", url, err)
	}

	resp, err := c.next.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return resp, nil
	}

	body := resp.Body()
	defer body.Close()

	data, err = io.ReadAll(body)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, key, data, c.ttl); err != nil {
		c.warn("Fetch cache write failed", url, err)
	}
	return &response{statusCode: resp.StatusCode(), body: data, header: resp.Header}, nil
}

func (c *Client) debug(msg, url string) {
	if c.logger != nil {
		c.logger.Debug(msg, map[string]interface{}{"url": url})
	}
}

func (c *Client) warn(msg, url string, err error) {
	if c.logger != nil {
		c.logger.Warn(msg, map[string]interface{}{"url": url, "error": err.Error()})
	}
}

// response replays a buffered body
type response struct {
	statusCode int
	body       []byte
	header     func(string) string
}

func newResponse(statusCode int, body []byte) *response {
	return &response{statusCode: statusCode, body: body}
}

func (r *response) StatusCode() int {
	return r.statusCode
}

func (r *response) Body() io.ReadCloser {
	return io.NopCloser(bytes.NewReader(r.body))
}

func (r *response) Header(key string) string {
	if r.header == nil {
		return ""
	}
	return r.header(key)
}
