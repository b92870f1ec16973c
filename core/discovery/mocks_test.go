package discovery

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/MyGet/PackageSourceDiscovery/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)

	mu    sync.Mutex
	calls []string
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.mu.Lock()
	m.calls = append(m.calls, url)
	m.mu.Unlock()

	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

func (m *mockHTTPClient) requested() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// siteClient serves fixed bodies by URL and answers 404 for anything else
func siteClient(pages map[string]string) *mockHTTPClient {
	return &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			body, ok := pages[url]
			if !ok {
				return &mockResponse{statusCode: 404, body: "Page not found."}, nil
			}
			return &mockResponse{statusCode: 200, body: body}, nil
		},
	}
}

// mockLogger records messages by level
type mockLogger struct {
	mu      sync.Mutex
	entries []string
}

func (m *mockLogger) log(level, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, fmt.Sprintf("%s: %s", level, msg))
}

func (m *mockLogger) Debug(msg string, _ map[string]interface{}) { m.log("debug", msg) }
func (m *mockLogger) Info(msg string, _ map[string]interface{})  { m.log("info", msg) }
func (m *mockLogger) Warn(msg string, _ map[string]interface{})  { m.log("warn", msg) }
func (m *mockLogger) Error(msg string, _ map[string]interface{}) { m.log("error", msg) }

func (m *mockLogger) has(entry string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e == entry {
			return true
		}
	}
	return false
}
