// ABOUTME: Configuration options for the discovery library client
// ABOUTME: Functional options for transport, credentials, caching and recursion depth

package psd

import (
	"net/http"
	"time"

	"github.com/MyGet/PackageSourceDiscovery/core/discovery"
	"github.com/MyGet/PackageSourceDiscovery/core/interfaces"
	"github.com/MyGet/PackageSourceDiscovery/infrastructure/http/standard"
)

// DefaultCacheTTL is used by WithCache when no TTL is given
const DefaultCacheTTL = 10 * time.Minute

// Option is a functional option for configuring the client
type Option func(*Config) error

// Config holds the configuration for the client
type Config struct {
	// HTTPClient replaces the built-in transport. Credentials cannot be
	// combined with a custom client.
	HTTPClient interfaces.HTTPClient

	Logger interfaces.Logger

	// Cache keeps fetched bodies for CacheTTL. Nil disables caching.
	Cache    interfaces.Cache
	CacheTTL time.Duration

	MaxDepth int

	Timeout   time.Duration
	UserAgent string
	Retries   int
	Transport http.RoundTripper

	Username string
	Password string
	APIKey   string
}

func defaultConfig() Config {
	return Config{
		Logger:   QuietLogger(),
		CacheTTL: DefaultCacheTTL,
		MaxDepth: discovery.DefaultMaxDepth,
		Timeout:  30 * time.Second,
		Retries:  3,
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		if client == nil {
			return NewError(ErrorTypeConfiguration, "HTTP client cannot be nil")
		}
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		if logger == nil {
			return NewError(ErrorTypeConfiguration, "logger cannot be nil")
		}
		c.Logger = logger
		return nil
	}
}

// WithCache caches fetched documents for ttl. A ttl of zero uses DefaultCacheTTL.
func WithCache(cache interfaces.Cache, ttl time.Duration) Option {
	return func(c *Config) error {
		c.Cache = cache
		if ttl > 0 {
			c.CacheTTL = ttl
		}
		return nil
	}
}

// WithMaxDepth sets how many links deep discovery may recurse
func WithMaxDepth(depth int) Option {
	return func(c *Config) error {
		if depth < 0 {
			return NewError(ErrorTypeValidation, "max depth cannot be negative").
				WithContext("max_depth", depth)
		}
		c.MaxDepth = depth
		return nil
	}
}

// WithTimeout sets the per-request timeout of the built-in transport
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return NewError(ErrorTypeValidation, "timeout must be positive")
		}
		c.Timeout = timeout
		return nil
	}
}

// WithUserAgent overrides the User-Agent sent by the built-in transport
func WithUserAgent(userAgent string) Option {
	return func(c *Config) error {
		c.UserAgent = userAgent
		return nil
	}
}

// WithRetries sets the total number of attempts per fetch
func WithRetries(attempts int) Option {
	return func(c *Config) error {
		if attempts < 1 {
			return NewError(ErrorTypeValidation, "retries must be at least 1")
		}
		c.Retries = attempts
		return nil
	}
}

// WithTransport sets the round tripper under the built-in transport
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Config) error {
		c.Transport = transport
		return nil
	}
}

// WithCredentials sends basic authentication with every fetch.
// Username and password must be given together.
func WithCredentials(username, password string) Option {
	return func(c *Config) error {
		if err := standard.ValidateCredentials(username, password); err != nil {
			return NewError(ErrorTypeValidation, "invalid credentials").WithCause(err)
		}
		c.Username = username
		c.Password = password
		return nil
	}
}

// WithAPIKey sends key in the NuGet-ApiKey header with every fetch
func WithAPIKey(key string) Option {
	return func(c *Config) error {
		c.APIKey = key
		return nil
	}
}

// WithQuietMode suppresses all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}

func (c *Config) hasCredentials() bool {
	return c.Username != "" || c.APIKey != ""
}
