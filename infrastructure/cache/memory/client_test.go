package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	coreerrors "github.com/MyGet/PackageSourceDiscovery/core/errors"
)

const (
	feedKey  = "fetch:http://example.org/api/v2/"
	feedBody = `<service xmlns="http://www.w3.org/2007/app"><workspace/></service>`
)

func TestNewMemoryCache(t *testing.T) {
	cache := NewMemoryCache()

	if cache == nil {
		t.Fatal("NewMemoryCache returned nil")
	}
	if cache.Len() != 0 {
		t.Errorf("Len() = %d, want 0", cache.Len())
	}
}

func TestMemoryCache_SetThenGet(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, feedKey, []byte(feedBody), time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := cache.Get(ctx, feedKey)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != feedBody {
		t.Errorf("Get returned %s, want %s", string(got), feedBody)
	}
}

func TestMemoryCache_MissesReturnErrCacheMiss(t *testing.T) {
	tests := []struct {
		name  string
		setup func(ctx context.Context, cache *MemoryCache)
	}{
		{
			name:  "never stored",
			setup: func(ctx context.Context, cache *MemoryCache) {},
		},
		{
			name: "expired",
			setup: func(ctx context.Context, cache *MemoryCache) {
				cache.Set(ctx, feedKey, []byte(feedBody), 10*time.Millisecond)
				time.Sleep(20 * time.Millisecond)
			},
		},
		{
			name: "deleted",
			setup: func(ctx context.Context, cache *MemoryCache) {
				cache.Set(ctx, feedKey, []byte(feedBody), time.Hour)
				cache.Delete(ctx, feedKey)
			},
		},
		{
			name: "stored under a different url",
			setup: func(ctx context.Context, cache *MemoryCache) {
				cache.Set(ctx, "fetch:http://example.org/api/v3/", []byte(feedBody), time.Hour)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewMemoryCache()
			ctx := context.Background()
			tt.setup(ctx, cache)

			got, err := cache.Get(ctx, feedKey)

			if !errors.Is(err, coreerrors.ErrCacheMiss) {
				t.Errorf("Get error = %v, want ErrCacheMiss", err)
			}
			if got != nil {
				t.Errorf("Get returned %q, want nil", got)
			}
		})
	}
}

func TestMemoryCache_NonPositiveTTLNeverExpires(t *testing.T) {
	tests := []struct {
		name string
		ttl  time.Duration
	}{
		{name: "zero", ttl: 0},
		{name: "negative", ttl: -time.Second},
		{name: "minimum negative", ttl: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewMemoryCache()
			ctx := context.Background()

			if err := cache.Set(ctx, feedKey, []byte(feedBody), tt.ttl); err != nil {
				t.Fatalf("Set returned error: %v", err)
			}
			time.Sleep(20 * time.Millisecond)

			got, err := cache.Get(ctx, feedKey)
			if err != nil {
				t.Fatalf("Get returned error: %v", err)
			}
			if string(got) != feedBody {
				t.Errorf("Get returned %s, want %s", string(got), feedBody)
			}
		})
	}
}

func TestMemoryCache_Set_ReplacesBodyAndTTL(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, feedKey, []byte("stale"), time.Hour)
	cache.Set(ctx, feedKey, []byte(feedBody), 10*time.Millisecond)

	got, err := cache.Get(ctx, feedKey)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != feedBody {
		t.Errorf("Get returned %s, want %s", string(got), feedBody)
	}

	time.Sleep(20 * time.Millisecond)
	if _, err := cache.Get(ctx, feedKey); !errors.Is(err, coreerrors.ErrCacheMiss) {
		t.Errorf("Get error after replaced TTL = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_Delete_UnknownKey(t *testing.T) {
	cache := NewMemoryCache()

	if err := cache.Delete(context.Background(), feedKey); err != nil {
		t.Errorf("Delete should return nil for unknown key, got: %v", err)
	}
}

func TestMemoryCache_ExpiryIsPerKey(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "fetch:http://example.org/a/", []byte("a"), 10*time.Millisecond)
	cache.Set(ctx, "fetch:http://example.org/b/", []byte("b"), time.Hour)
	cache.Set(ctx, "fetch:http://example.org/c/", []byte("c"), 0)

	time.Sleep(20 * time.Millisecond)

	if _, err := cache.Get(ctx, "fetch:http://example.org/a/"); !errors.Is(err, coreerrors.ErrCacheMiss) {
		t.Errorf("a error = %v, want ErrCacheMiss", err)
	}
	if _, err := cache.Get(ctx, "fetch:http://example.org/b/"); err != nil {
		t.Error("b should still exist")
	}
	if _, err := cache.Get(ctx, "fetch:http://example.org/c/"); err != nil {
		t.Error("c should still exist")
	}
	if cache.Len() != 3 {
		t.Errorf("Len() = %d, want 3 before cleanup", cache.Len())
	}
}

func TestMemoryCache_CancelledContext(t *testing.T) {
	cache := NewMemoryCache()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := cache.Set(ctx, feedKey, []byte(feedBody), time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("Set error = %v, want context.Canceled", err)
	}
	if _, err := cache.Get(ctx, feedKey); !errors.Is(err, context.Canceled) {
		t.Errorf("Get error = %v, want context.Canceled", err)
	}
	if err := cache.Delete(ctx, feedKey); !errors.Is(err, context.Canceled) {
		t.Errorf("Delete error = %v, want context.Canceled", err)
	}
	if cache.Len() != 0 {
		t.Errorf("Len() = %d, want 0 after cancelled Set", cache.Len())
	}
}

func TestMemoryCache_CopyOnWrite(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	body := []byte(feedBody)
	cache.Set(ctx, feedKey, body, time.Hour)
	body[0] = 'X'

	got, _ := cache.Get(ctx, feedKey)
	if string(got) != feedBody {
		t.Errorf("stored body = %s, want caller mutation to be ignored", string(got))
	}
}

func TestMemoryCache_CopyOnRead(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, feedKey, []byte(feedBody), time.Hour)

	first, _ := cache.Get(ctx, feedKey)
	second, _ := cache.Get(ctx, feedKey)
	for i := range first {
		first[i] = 'Y'
	}

	if string(second) != feedBody {
		t.Errorf("second read = %s, want it unaffected by mutating the first", string(second))
	}
	again, _ := cache.Get(ctx, feedKey)
	if string(again) != feedBody {
		t.Errorf("stored body = %s, want %s", string(again), feedBody)
	}
}
