package config

import "time"

// Config is the root configuration structure for the solar system catalog
// service. It contains the HTTP server, catalog store, documentation and
// telemetry sections.
type Config struct {
	// Server contains HTTP server configuration including listen address,
	// timeouts, response policies and CORS.
	Server ServerConfig `yaml:"server"`

	// Store contains configuration for the backing catalog store and the
	// connection monitor that drives readiness.
	Store StoreConfig `yaml:"store"`

	// Docs contains configuration for the API description document.
	Docs DocsConfig `yaml:"docs"`

	// Telemetry contains configuration for logging, metrics and tracing.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig contains configuration for the HTTP server.
type ServerConfig struct {
	// ListenAddress is the address and port to listen on.
	// Format: "host:port" (e.g., "0.0.0.0:5555").
	// Default: "0.0.0.0:5555"
	ListenAddress string `yaml:"listen_address"`

	// Environment is the runtime environment name reported by GET /os.
	// Default: "development"
	Environment string `yaml:"environment"`

	// ReadTimeout is the maximum duration for reading the entire request.
	// Default: 15s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the
	// response.
	// Default: 15s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request
	// when keep-alives are enabled.
	// Default: 60s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for in-flight requests
	// during graceful shutdown.
	// Default: 30s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxHeaderBytes limits the size of request headers.
	// Default: 1048576 (1MB)
	MaxHeaderBytes int `yaml:"max_header_bytes"`

	// StaticDir is the directory served at "/". It must contain index.html.
	// Default: "./public"
	StaticDir string `yaml:"static_dir"`

	// NotFoundStatus is the status code returned when a lookup id matches no
	// record. Options: 404, 400
	// Default: 404
	NotFoundStatus int `yaml:"not_found_status"`

	// NotReadyStatus is the status code returned by /ready while the store
	// is not connected. Options: 503, 500
	// Default: 503
	NotReadyStatus int `yaml:"not_ready_status"`

	// CORS contains Cross-Origin Resource Sharing configuration.
	CORS CORSConfig `yaml:"cors"`
}

// CORSConfig contains CORS (Cross-Origin Resource Sharing) configuration.
type CORSConfig struct {
	// Enabled controls whether CORS headers are written.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// AllowedOrigins is a list of allowed origins. ["*"] allows all.
	// Default: ["*"]
	AllowedOrigins []string `yaml:"allowed_origins"`

	// AllowedMethods is a list of allowed HTTP methods.
	// Default: ["GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"]
	AllowedMethods []string `yaml:"allowed_methods"`

	// AllowedHeaders is a list of allowed request headers.
	// Default: ["Content-Type", "X-Request-ID"]
	AllowedHeaders []string `yaml:"allowed_headers"`

	// ExposedHeaders is a list of headers exposed to the client.
	// Default: ["X-Request-ID"]
	ExposedHeaders []string `yaml:"exposed_headers"`

	// MaxAge is the preflight cache duration in seconds.
	// Default: 3600
	MaxAge int `yaml:"max_age"`

	// AllowCredentials controls whether credentials are allowed.
	// Default: false
	AllowCredentials bool `yaml:"allow_credentials"`
}

// StoreConfig contains configuration for the catalog store.
type StoreConfig struct {
	// Backend selects the store implementation.
	// Options: "sqlite", "postgres", "redis", "memory"
	// Default: "sqlite"
	Backend string `yaml:"backend"`

	// URI is the connection string for network backends.
	// Examples: "postgres://localhost:5432/catalog", "redis://localhost:6379/0"
	URI string `yaml:"uri"`

	// Username overrides the user embedded in URI when set.
	Username string `yaml:"username"`

	// Password overrides the password embedded in URI when set.
	// This should typically be loaded from an environment variable.
	Password string `yaml:"password"`

	// ConnectTimeout bounds the startup handshake with the store.
	// Default: 10s
	ConnectTimeout time.Duration `yaml:"connect_timeout"`

	// ProbeSchedule is the cron schedule of the connection monitor.
	// Default: "@every 5s"
	ProbeSchedule string `yaml:"probe_schedule"`

	// ProbeTimeout bounds each connection probe.
	// Default: 2s
	ProbeTimeout time.Duration `yaml:"probe_timeout"`

	// SQLite contains SQLite backend configuration.
	SQLite SQLiteConfig `yaml:"sqlite"`

	// Postgres contains PostgreSQL backend configuration.
	Postgres PostgresConfig `yaml:"postgres"`

	// Redis contains Redis backend configuration.
	Redis RedisConfig `yaml:"redis"`
}

// SQLiteConfig contains SQLite backend configuration.
type SQLiteConfig struct {
	// Path is the database file path.
	// Default: "data/catalog.db"
	Path string `yaml:"path"`

	// Driver selects the database/sql driver.
	// Options: "sqlite" (pure Go), "sqlite3" (cgo)
	// Default: "sqlite"
	Driver string `yaml:"driver"`

	// BusyTimeout is how long to wait for locks before failing.
	// Default: 5s
	BusyTimeout time.Duration `yaml:"busy_timeout"`
}

// PostgresConfig contains PostgreSQL backend configuration.
type PostgresConfig struct {
	// MaxConns is the maximum pool size.
	// Default: 10
	MaxConns int32 `yaml:"max_conns"`

	// MinConns is the minimum number of idle pool connections.
	// Default: 1
	MinConns int32 `yaml:"min_conns"`
}

// RedisConfig contains Redis backend configuration.
type RedisConfig struct {
	// DB is the logical database index. Ignored when URI selects one.
	DB int `yaml:"db"`

	// KeyPrefix is prepended to every record key.
	// Default: "planets:"
	KeyPrefix string `yaml:"key_prefix"`

	// PoolSize is the maximum number of socket connections.
	// Default: 10
	PoolSize int `yaml:"pool_size"`
}

// DocsConfig contains configuration for the API description document.
type DocsConfig struct {
	// Path is the API description file served at /api-docs.
	// Default: "./oas.json"
	Path string `yaml:"path"`

	// Watch enables a file watcher that reports when the document goes
	// missing or becomes malformed.
	// Default: true
	Watch bool `yaml:"watch"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`

	// Tracing contains OpenTelemetry tracing configuration.
	Tracing TracingConfig `yaml:"tracing"`
}

// LoggingConfig contains structured logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the log output format.
	// Options: "json", "text"
	// Default: "json"
	Format string `yaml:"format"`

	// AddSource includes file and line in log records.
	// Default: false
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether metrics are collected and exposed.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Path is the HTTP path of the metrics endpoint.
	// Default: "/metrics"
	Path string `yaml:"path"`

	// Namespace is the metric name prefix.
	// Default: "solarsystem"
	Namespace string `yaml:"namespace"`
}

// TracingConfig contains OpenTelemetry tracing configuration.
type TracingConfig struct {
	// Enabled controls whether spans are exported.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Sampler determines the sampling strategy.
	// Options: "always", "never", "ratio"
	// Default: "ratio"
	Sampler string `yaml:"sampler"`

	// SampleRatio is the fraction of traces to sample (0.0 to 1.0).
	// Default: 0.1
	SampleRatio float64 `yaml:"sample_ratio"`

	// Endpoint is the OTLP gRPC collector endpoint.
	// Default: "localhost:4317"
	Endpoint string `yaml:"endpoint"`

	// ServiceName is the service name in traces.
	// Default: "solarsystem"
	ServiceName string `yaml:"service_name"`

	// Insecure disables TLS for the collector connection.
	// Default: true
	Insecure bool `yaml:"insecure"`

	// Timeout bounds each export.
	// Default: 10s
	Timeout time.Duration `yaml:"timeout"`
}
