package config

import (
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Server: ServerConfig{Port: "8000"},
		Discovery: DiscoveryConfig{
			MaxDepth:     8,
			FetchTimeout: 30 * time.Second,
			UserAgent:    "PackageSourceDiscovery/1.0",
			Retries:      3,
			Concurrency:  4,
		},
		Cache: CacheConfig{
			Type: CacheNone,
			TTL:  10 * time.Minute,
		},
		Log:       LogConfig{Level: "info", Format: "json"},
		RateLimit: RateLimitConfig{Requests: 60, Window: time.Minute},
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("PSD_SERVER_PORT", "")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Errorf("Port = %v, want 8000", cfg.Server.Port)
	}
	if cfg.Discovery.MaxDepth != 8 {
		t.Errorf("MaxDepth = %v, want 8", cfg.Discovery.MaxDepth)
	}
	if cfg.Discovery.FetchTimeout != 30*time.Second {
		t.Errorf("FetchTimeout = %v, want 30s", cfg.Discovery.FetchTimeout)
	}
	if cfg.Cache.Type != CacheNone {
		t.Errorf("Cache.Type = %v, want %v", cfg.Cache.Type, CacheNone)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v, want info/json", cfg.Log)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "uses PORT env var when set",
			envVars: map[string]string{"PORT": "3000"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Server.Port != "3000" {
					t.Errorf("Port = %v, want 3000", cfg.Server.Port)
				}
			},
		},
		{
			name:    "prefixed port wins over PORT",
			envVars: map[string]string{"PORT": "3000", "PSD_SERVER_PORT": "4000"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Server.Port != "4000" {
					t.Errorf("Port = %v, want 4000", cfg.Server.Port)
				}
			},
		},
		{
			name: "discovery settings",
			envVars: map[string]string{
				"PSD_DISCOVERY_MAX_DEPTH":     "3",
				"PSD_DISCOVERY_FETCH_TIMEOUT": "5s",
				"PSD_DISCOVERY_RETRIES":       "1",
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Discovery.MaxDepth != 3 {
					t.Errorf("MaxDepth = %v, want 3", cfg.Discovery.MaxDepth)
				}
				if cfg.Discovery.FetchTimeout != 5*time.Second {
					t.Errorf("FetchTimeout = %v, want 5s", cfg.Discovery.FetchTimeout)
				}
				if cfg.Discovery.Retries != 1 {
					t.Errorf("Retries = %v, want 1", cfg.Discovery.Retries)
				}
			},
		},
		{
			name: "cache settings are normalized",
			envVars: map[string]string{
				"PSD_CACHE_TYPE":          "Redis",
				"PSD_CACHE_TTL":           "1h",
				"PSD_CACHE_REDIS_ADDRESS": "redis:6379",
				"PSD_CACHE_REDIS_DB":      "2",
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Cache.Type != CacheRedis {
					t.Errorf("Cache.Type = %v, want redis", cfg.Cache.Type)
				}
				if cfg.Cache.TTL != time.Hour {
					t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
				}
				if cfg.Cache.Redis.Address != "redis:6379" || cfg.Cache.Redis.DB != 2 {
					t.Errorf("Cache.Redis = %+v", cfg.Cache.Redis)
				}
			},
		},
		{
			name:    "log settings",
			envVars: map[string]string{"PSD_LOG_LEVEL": "DEBUG", "PSD_LOG_FORMAT": "text"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
					t.Errorf("Log = %+v, want debug/text", cfg.Log)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", "")
			t.Setenv("PSD_SERVER_PORT", "")
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := LoadFromEnv()
			if err != nil {
				t.Fatalf("LoadFromEnv() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadFromEnv_InvalidNumberFailsValidation(t *testing.T) {
	t.Setenv("PSD_DISCOVERY_RETRIES", "not-a-number")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject an unparsable retry count")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "empty port",
			mutate:  func(c *Config) { c.Server.Port = "" },
			wantErr: true,
			errMsg:  "port cannot be empty",
		},
		{
			name:    "negative max depth",
			mutate:  func(c *Config) { c.Discovery.MaxDepth = -1 },
			wantErr: true,
			errMsg:  "discovery max depth cannot be negative",
		},
		{
			name:    "zero max depth is allowed",
			mutate:  func(c *Config) { c.Discovery.MaxDepth = 0 },
			wantErr: false,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Discovery.FetchTimeout = 0 },
			wantErr: true,
			errMsg:  "discovery fetch timeout must be positive",
		},
		{
			name:    "invalid cache type",
			mutate:  func(c *Config) { c.Cache.Type = "invalid" },
			wantErr: true,
			errMsg:  `cache type must be one of none, memory, redis, sqlite; got "invalid"`,
		},
		{
			name: "redis type with empty address",
			mutate: func(c *Config) {
				c.Cache.Type = CacheRedis
				c.Cache.Redis.Address = ""
			},
			wantErr: true,
			errMsg:  "redis address cannot be empty when using redis cache",
		},
		{
			name: "sqlite type with empty path",
			mutate: func(c *Config) {
				c.Cache.Type = CacheSQLite
				c.Cache.SQLite.Path = ""
			},
			wantErr: true,
			errMsg:  "sqlite path cannot be empty when using sqlite cache",
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: true,
		},
		{
			name:    "zero rate limit",
			mutate:  func(c *Config) { c.RateLimit.Requests = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil && tt.errMsg != "" && err.Error() != tt.errMsg {
				t.Errorf("Validate() error = %v, want %v", err.Error(), tt.errMsg)
			}
		})
	}
}
