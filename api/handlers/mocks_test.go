package handlers

import (
	"context"
	"sync"

	"github.com/MyGet/PackageSourceDiscovery/core/domain"
)

// mockDiscoverer is a function-field Discoverer
type mockDiscoverer struct {
	discoverFunc func(ctx context.Context, uri, title string) ([]*domain.DiscoveryDocument, error)
}

func (m *mockDiscoverer) Discover(ctx context.Context, uri, title string) ([]*domain.DiscoveryDocument, error) {
	if m.discoverFunc != nil {
		return m.discoverFunc(ctx, uri, title)
	}
	return []*domain.DiscoveryDocument{}, nil
}

// recordingFactory returns d and remembers the credentials it was asked for
type recordingFactory struct {
	mu         sync.Mutex
	discoverer Discoverer
	err        error
	creds      []Credentials
}

func (f *recordingFactory) build(creds Credentials) (Discoverer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creds = append(f.creds, creds)
	if f.err != nil {
		return nil, f.err
	}
	return f.discoverer, nil
}

type mockLogger struct {
	mu       sync.Mutex
	messages []string
}

func (m *mockLogger) record(level, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, level+": "+msg)
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record("debug", msg) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.record("info", msg) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.record("warn", msg) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record("error", msg) }

func feedDocument(title, feed string) *domain.DiscoveryDocument {
	return domain.NewFeedDocument(title, feed)
}
