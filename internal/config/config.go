// Package config loads application settings from environment variables,
// applying defaults and validating everything at startup so a bad setting
// fails fast.
package config

import (
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Upload   UploadConfig
	Rate     RateLimitConfig
	Security SecurityConfig
	Logging  LoggingConfig
	Parse    ParseConfig
	Tracing  TracingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8000)
	Port int `env:"SERVER_PORT" envAlt:"PORT" default:"8000"`

	// ReadTimeout is the maximum duration for reading a request (default: 60s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"60s"`

	// WriteTimeout is the maximum duration for writing a response (default: 180s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"180s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout bounds graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 150s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"150s"`
}

// UploadConfig bounds what one request may submit and how many jobs run.
type UploadConfig struct {
	// MaxRequestSize is the maximum request body in bytes (default: 100MB)
	MaxRequestSize int64 `env:"UPLOAD_MAX_REQUEST_SIZE" default:"104857600"`

	// MaxFiles is the maximum number of files in one form field (default: 500)
	MaxFiles int `env:"UPLOAD_MAX_FILES" default:"500"`

	// MaxDocuments caps documents per job after zip expansion (default: 2000)
	MaxDocuments int `env:"UPLOAD_MAX_DOCUMENTS" default:"2000"`

	// MaxConcurrent is the maximum number of parallel jobs (default: 5)
	MaxConcurrent int `env:"UPLOAD_MAX_CONCURRENT" default:"5"`

	// MaxWaitTime is how long a job waits for a slot (default: 30s)
	MaxWaitTime time.Duration `env:"UPLOAD_MAX_WAIT_TIME" default:"30s"`

	// JobTimeout bounds a single job (default: 2m)
	JobTimeout time.Duration `env:"UPLOAD_JOB_TIMEOUT" default:"2m"`
}

// RateLimitConfig holds per-IP rate limits.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute applies to every API request (default: 100)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"100"`

	// UploadLimit applies to endpoints that produce downloads (default: 30)
	UploadLimit int `env:"RATE_LIMIT_UPLOAD" default:"30"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	// CORSOrigins lists browser origins allowed to call the API
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://127.0.0.1:3000"`

	// EnableCSP enables Content-Security-Policy headers (default: true)
	EnableCSP bool `env:"SECURITY_ENABLE_CSP" default:"true"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// ParseConfig tunes the extraction engines.
type ParseConfig struct {
	// PatternsFile is an optional YAML rule file overriding field patterns
	// and the LLDP noise filter.
	PatternsFile string `env:"PATTERNS_FILE"`

	// OUIStripPrefix is removed from names in LLDP OUI mode unless the
	// request says otherwise (default: PUSTC_)
	OUIStripPrefix string `env:"LLDP_OUI_STRIP_PREFIX" default:"PUSTC_"`

	// Workers bounds per-job parallelism (default: 4)
	Workers int `env:"PARSE_WORKERS" default:"4"`

	// NotFound is shown for fields that could not be extracted (default: N/A)
	NotFound string `env:"NOT_FOUND_TEXT" default:"N/A"`
}

// TracingConfig selects the OpenTelemetry exporter.
type TracingConfig struct {
	// Endpoint is the OTLP/HTTP collector host:port; empty disables tracing
	Endpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	// ServiceName is reported on every span (default: nettools)
	ServiceName string `env:"OTEL_SERVICE_NAME" default:"nettools"`

	// Insecure sends spans over plain HTTP (default: false)
	Insecure bool `env:"OTEL_EXPORTER_OTLP_INSECURE" default:"false"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
