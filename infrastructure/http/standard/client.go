// ABOUTME: Standard HTTP client implementation with retry logic and timeout support
// ABOUTME: Fetches discovery documents with exponential backoff and pre-request interceptors

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/MyGet/PackageSourceDiscovery/core/interfaces"
)

const (
	defaultMaxRetries = 3
	defaultUserAgent  = "PackageSourceDiscovery/1.0"
	initialInterval   = 100 * time.Millisecond
)

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client       *http.Client
	userAgent    string
	maxRetries   int
	interceptors []RequestInterceptor
}

// Option configures a StandardHTTPClient
type Option func(*StandardHTTPClient)

// WithUserAgent overrides the User-Agent header
func WithUserAgent(userAgent string) Option {
	return func(c *StandardHTTPClient) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithMaxRetries sets the total number of attempts per request
func WithMaxRetries(attempts int) Option {
	return func(c *StandardHTTPClient) {
		if attempts > 0 {
			c.maxRetries = attempts
		}
	}
}

// WithInterceptors adds hooks that run on every outgoing request
func WithInterceptors(interceptors ...RequestInterceptor) Option {
	return func(c *StandardHTTPClient) {
		c.interceptors = append(c.interceptors, interceptors...)
	}
}

// WithTransport replaces the underlying round tripper
func WithTransport(transport http.RoundTripper) Option {
	return func(c *StandardHTTPClient) {
		c.client.Transport = transport
	}
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration, opts ...Option) *StandardHTTPClient {
	c := &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent:  defaultUserAgent,
		maxRetries: defaultMaxRetries,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs an HTTP GET request. Transport errors and 5xx responses are
// retried; when every attempt ends in 5xx the last response is returned.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)
	for _, intercept := range c.interceptors {
		if err := intercept(req); err != nil {
			return nil, err
		}
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = initialInterval
	policy.Multiplier = 2
	policy.RandomizationFactor = 0

	attempt := 0
	resp, err := backoff.Retry(ctx, func() (*http.Response, error) {
		attempt++

		resp, err := c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}

		// Don't retry on success or 4xx errors
		if resp.StatusCode < 500 || attempt >= c.maxRetries {
			return resp, nil
		}

		resp.Body.Close()
		return nil, fmt.Errorf("server returned %d", resp.StatusCode)
	}, backoff.WithBackOff(policy), backoff.WithMaxTries(uint(c.maxRetries)))
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
