// ABOUTME: Default implementations for library dependencies
// ABOUTME: Builds the fetch stack from a Config and provides stock loggers

package psd

import (
	"github.com/MyGet/PackageSourceDiscovery/core/interfaces"
	"github.com/MyGet/PackageSourceDiscovery/infrastructure/http/cached"
	"github.com/MyGet/PackageSourceDiscovery/infrastructure/http/standard"
	loggerInfra "github.com/MyGet/PackageSourceDiscovery/infrastructure/logger/standard"
)

// DefaultLogger creates a default logger that writes JSON to stdout
func DefaultLogger() interfaces.Logger {
	return loggerInfra.NewStandardLogger()
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return &quietLogger{}
}

type quietLogger struct{}

func (q *quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *quietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Error(msg string, fields map[string]interface{}) {}

// buildHTTPClient assembles the transport described by config. Responses
// fetched with credentials are never cached, so one caller's authenticated
// content cannot be served to another.
func buildHTTPClient(config *Config) (interfaces.HTTPClient, error) {
	if config.HTTPClient != nil {
		if config.hasCredentials() {
			return nil, NewError(ErrorTypeConfiguration, "credentials cannot be combined with a custom HTTP client")
		}
		return config.HTTPClient, nil
	}

	interceptors, err := standard.CredentialInterceptors(config.Username, config.Password, config.APIKey)
	if err != nil {
		return nil, NewError(ErrorTypeValidation, "invalid credentials").WithCause(err)
	}

	opts := []standard.Option{
		standard.WithUserAgent(config.UserAgent),
		standard.WithMaxRetries(config.Retries),
		standard.WithInterceptors(interceptors...),
	}
	if config.Transport != nil {
		opts = append(opts, standard.WithTransport(config.Transport))
	}

	var client interfaces.HTTPClient = standard.NewStandardHTTPClient(config.Timeout, opts...)
	if config.Cache != nil && !config.hasCredentials() {
		client = cached.NewClient(client, config.Cache, config.CacheTTL, config.Logger)
	}
	return client, nil
}
