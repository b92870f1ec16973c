// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Loads server, discovery, cache, logging and rate limit settings through viper

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. PSD_SERVER_PORT
const EnvPrefix = "PSD"

// Cache backends
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheSQLite = "sqlite"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Discovery controls how seeds are fetched and followed
	Discovery DiscoveryConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Log contains logger configuration
	Log LogConfig

	// RateLimit bounds requests per client IP
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// DiscoveryConfig holds discovery engine and transport settings
type DiscoveryConfig struct {
	// MaxDepth is how many nuget links deep discovery may follow
	MaxDepth int

	// FetchTimeout bounds each HTTP request
	FetchTimeout time.Duration

	// UserAgent is sent with every request
	UserAgent string

	// Retries is the number of attempts per request
	Retries int

	// Concurrency bounds how many seeds one API call discovers at once
	Concurrency int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (none/memory/redis/sqlite)
	Type string

	// TTL is how long fetched documents stay cached
	TTL time.Duration

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	// Path is the database file; ":memory:" keeps it in process
	Path string
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is json or text
	Format string
}

// RateLimitConfig holds per-IP rate limiting configuration
type RateLimitConfig struct {
	// Requests allowed per Window
	Requests int

	// Window over which Requests are counted
	Window time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8000")

	v.SetDefault("discovery.max_depth", 8)
	v.SetDefault("discovery.fetch_timeout", 30*time.Second)
	v.SetDefault("discovery.user_agent", "PackageSourceDiscovery/1.0")
	v.SetDefault("discovery.retries", 3)
	v.SetDefault("discovery.concurrency", 4)

	v.SetDefault("cache.type", CacheNone)
	v.SetDefault("cache.ttl", 10*time.Minute)
	v.SetDefault("cache.redis.address", "localhost:6379")
	v.SetDefault("cache.redis.password", "")
	v.SetDefault("cache.redis.db", 0)
	v.SetDefault("cache.sqlite.path", "psd-cache.db")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("rate_limit.requests", 60)
	v.SetDefault("rate_limit.window", time.Minute)
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	// PORT is honoured for platforms that inject it without a prefix.
	if err := v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT"); err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetString("server.port"),
		},
		Discovery: DiscoveryConfig{
			MaxDepth:     v.GetInt("discovery.max_depth"),
			FetchTimeout: v.GetDuration("discovery.fetch_timeout"),
			UserAgent:    v.GetString("discovery.user_agent"),
			Retries:      v.GetInt("discovery.retries"),
			Concurrency:  v.GetInt("discovery.concurrency"),
		},
		Cache: CacheConfig{
			Type: strings.ToLower(v.GetString("cache.type")),
			TTL:  v.GetDuration("cache.ttl"),
			Redis: RedisConfig{
				Address:  v.GetString("cache.redis.address"),
				Password: v.GetString("cache.redis.password"),
				DB:       v.GetInt("cache.redis.db"),
			},
			SQLite: SQLiteConfig{
				Path: v.GetString("cache.sqlite.path"),
			},
		},
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("log.level")),
			Format: strings.ToLower(v.GetString("log.format")),
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("rate_limit.requests"),
			Window:   v.GetDuration("rate_limit.window"),
		},
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Discovery.MaxDepth < 0 {
		return errors.New("discovery max depth cannot be negative")
	}

	if c.Discovery.FetchTimeout <= 0 {
		return errors.New("discovery fetch timeout must be positive")
	}

	if c.Discovery.Retries < 1 {
		return errors.New("discovery retries must be at least 1")
	}

	if c.Discovery.Concurrency < 1 {
		return errors.New("discovery concurrency must be at least 1")
	}

	switch c.Cache.Type {
	case CacheNone, CacheMemory:
	case CacheRedis:
		if c.Cache.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis cache")
		}
	case CacheSQLite:
		if c.Cache.SQLite.Path == "" {
			return errors.New("sqlite path cannot be empty when using sqlite cache")
		}
	default:
		return fmt.Errorf("cache type must be one of none, memory, redis, sqlite; got %q", c.Cache.Type)
	}

	if c.Cache.TTL < 0 {
		return errors.New("cache ttl cannot be negative")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("log format must be json or text; got %q", c.Log.Format)
	}

	if c.RateLimit.Requests < 1 || c.RateLimit.Window <= 0 {
		return errors.New("rate limit requires at least 1 request per positive window")
	}

	return nil
}
