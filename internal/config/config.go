// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"strconv"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server   ServerConfig
	Sheet    SheetConfig
	Board    BoardConfig
	Rate     RateLimitConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading a request (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing a response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 15s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`

	// RequestTimeout is the middleware timeout for requests (default: 30s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"30s"`
}

// SheetConfig describes where the leaderboard CSV is published.
type SheetConfig struct {
	// URL is the published CSV location. Not required at startup: a missing
	// URL is reported on every load so the page can explain it.
	URL string `env:"SHEET_CSV_URL" envAlt:"CSV_URL"`

	// FetchTimeout bounds a single retrieval of the sheet (default: 10s)
	FetchTimeout time.Duration `env:"SHEET_FETCH_TIMEOUT" default:"10s"`

	// MaxBytes caps the size of the fetched document (default: 5MB)
	MaxBytes int64 `env:"SHEET_MAX_BYTES" default:"5242880"`
}

// BoardConfig holds ranking and display settings.
type BoardConfig struct {
	// PoolTotal is the fixed amount the remaining pool is computed from (default: 500)
	PoolTotal float64 `env:"BOARD_POOL_TOTAL" default:"500"`

	// DefaultSort is the sort key used when none is requested (default: score)
	DefaultSort string `env:"BOARD_DEFAULT_SORT" default:"score"`

	// DefaultDir is the sort direction used when none is requested (default: desc)
	DefaultDir string `env:"BOARD_DEFAULT_DIR" default:"desc"`

	// TimeFormat is the layout of the "last updated" stamp
	TimeFormat string `env:"BOARD_TIME_FORMAT" default:"Jan 2, 2006 3:04:05 PM"`

	// RetryBackoff is how long page views reuse a failed first load's error
	// before fetching again. Explicit refreshes ignore it. 0 disables (default: 15s)
	RetryBackoff time.Duration `env:"BOARD_RETRY_BACKOFF" default:"15s"`
}

// RateLimitConfig holds rate limiting settings for refresh endpoints.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RefreshPerMinute is the number of refreshes allowed per IP per minute (default: 12)
	RefreshPerMinute int `env:"RATE_LIMIT_REFRESH_PER_MINUTE" default:"12"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// AllowedOrigins is a comma-separated list of origins allowed to call /api
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS"`

	// EnableCSP enables Content-Security-Policy headers (default: true)
	EnableCSP bool `env:"SECURITY_ENABLE_CSP" default:"true"`

	// TrustedProxies lists proxy CIDRs whose X-Real-IP / X-Forwarded-For
	// headers are believed. Empty means the connection address is always used.
	TrustedProxies []string `env:"TRUSTED_PROXIES"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
