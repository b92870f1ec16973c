// ABOUTME: Request interceptors attach credentials to outgoing discovery requests
// ABOUTME: Replaces event-style "before send" hooks with plain functions passed at construction

package standard

import (
	"net/http"

	coreerrors "github.com/MyGet/PackageSourceDiscovery/core/errors"
)

// APIKeyHeaderName carries a feed API key on discovery requests
const APIKeyHeaderName = "NuGet-ApiKey"

// RequestInterceptor mutates a request before it is sent. Returning an
// error aborts the request.
type RequestInterceptor func(req *http.Request) error

// BasicAuth sends HTTP basic credentials. An empty username disables it.
func BasicAuth(username, password string) RequestInterceptor {
	return func(req *http.Request) error {
		if username != "" {
			req.SetBasicAuth(username, password)
		}
		return nil
	}
}

// APIKeyHeader sends key in the API key header. An empty key disables it.
func APIKeyHeader(key string) RequestInterceptor {
	return func(req *http.Request) error {
		if key != "" {
			req.Header.Set(APIKeyHeaderName, key)
		}
		return nil
	}
}

// ValidateCredentials requires username and password to be given together
func ValidateCredentials(username, password string) error {
	if (username == "") != (password == "") {
		return &coreerrors.ValidationError{
			Field:   "credentials",
			Message: "both username and password must be specified",
		}
	}
	return nil
}

// CredentialInterceptors returns the interceptors for the given credentials
// after validating them
func CredentialInterceptors(username, password, apiKey string) ([]RequestInterceptor, error) {
	if err := ValidateCredentials(username, password); err != nil {
		return nil, err
	}
	return []RequestInterceptor{
		BasicAuth(username, password),
		APIKeyHeader(apiKey),
	}, nil
}
