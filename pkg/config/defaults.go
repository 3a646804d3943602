package config

import "time"

// Default values for configuration fields.
const (
	// Server defaults
	DefaultListenAddress   = "0.0.0.0:5555"
	DefaultEnvironment     = "development"
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultMaxHeaderBytes  = 1048576 // 1MB
	DefaultStaticDir       = "./public"
	DefaultNotFoundStatus  = 404
	DefaultNotReadyStatus  = 503

	// CORS defaults
	DefaultCORSEnabled = true
	DefaultCORSMaxAge  = 3600 // 1 hour

	// Store defaults
	DefaultStoreBackend        = "sqlite"
	DefaultStoreConnectTimeout = 10 * time.Second
	DefaultStoreProbeSchedule  = "@every 5s"
	DefaultStoreProbeTimeout   = 2 * time.Second
	DefaultSQLitePath          = "data/catalog.db"
	DefaultSQLiteDriver        = "sqlite"
	DefaultSQLiteBusyTimeout   = 5 * time.Second
	DefaultPostgresMaxConns    = 10
	DefaultPostgresMinConns    = 1
	DefaultRedisKeyPrefix      = "planets:"
	DefaultRedisPoolSize       = 10

	// Docs defaults
	DefaultDocsPath  = "./oas.json"
	DefaultDocsWatch = true

	// Telemetry defaults
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "json"
	DefaultMetricsEnabled     = true
	DefaultMetricsPath        = "/metrics"
	DefaultMetricsNamespace   = "solarsystem"
	DefaultTracingSampler     = "ratio"
	DefaultTracingSampleRatio = 0.1
	DefaultTracingEndpoint    = "localhost:4317"
	DefaultTracingServiceName = "solarsystem"
	DefaultTracingInsecure    = true
	DefaultTracingTimeout     = 10 * time.Second
)

// DefaultCORSAllowedOrigins mirrors a permissive cors() setup.
var DefaultCORSAllowedOrigins = []string{"*"}

// DefaultCORSAllowedMethods is the default set of methods allowed cross-origin.
var DefaultCORSAllowedMethods = []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"}

// DefaultCORSAllowedHeaders is the default set of request headers allowed cross-origin.
var DefaultCORSAllowedHeaders = []string{"Content-Type", "X-Request-ID"}

// DefaultCORSExposedHeaders is the default set of response headers exposed to clients.
var DefaultCORSExposedHeaders = []string{"X-Request-ID"}

// NewDefaultConfig returns a configuration populated with default values.
// Fields whose zero value is a meaningful setting (true-by-default booleans,
// the sample ratio) are set here, so a YAML document that names them keeps
// its value.
func NewDefaultConfig() *Config {
	cfg := &Config{}
	cfg.Server.CORS.Enabled = DefaultCORSEnabled
	cfg.Docs.Watch = DefaultDocsWatch
	cfg.Telemetry.Metrics.Enabled = DefaultMetricsEnabled
	cfg.Telemetry.Tracing.Insecure = DefaultTracingInsecure
	cfg.Telemetry.Tracing.SampleRatio = DefaultTracingSampleRatio
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills every zero-valued field of cfg with its default.
func ApplyDefaults(cfg *Config) {
	// Server defaults
	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = DefaultListenAddress
	}
	if cfg.Server.Environment == "" {
		cfg.Server.Environment = DefaultEnvironment
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Server.MaxHeaderBytes == 0 {
		cfg.Server.MaxHeaderBytes = DefaultMaxHeaderBytes
	}
	if cfg.Server.StaticDir == "" {
		cfg.Server.StaticDir = DefaultStaticDir
	}
	if cfg.Server.NotFoundStatus == 0 {
		cfg.Server.NotFoundStatus = DefaultNotFoundStatus
	}
	if cfg.Server.NotReadyStatus == 0 {
		cfg.Server.NotReadyStatus = DefaultNotReadyStatus
	}

	// CORS defaults
	if len(cfg.Server.CORS.AllowedOrigins) == 0 {
		cfg.Server.CORS.AllowedOrigins = DefaultCORSAllowedOrigins
	}
	if len(cfg.Server.CORS.AllowedMethods) == 0 {
		cfg.Server.CORS.AllowedMethods = DefaultCORSAllowedMethods
	}
	if len(cfg.Server.CORS.AllowedHeaders) == 0 {
		cfg.Server.CORS.AllowedHeaders = DefaultCORSAllowedHeaders
	}
	if len(cfg.Server.CORS.ExposedHeaders) == 0 {
		cfg.Server.CORS.ExposedHeaders = DefaultCORSExposedHeaders
	}
	if cfg.Server.CORS.MaxAge == 0 {
		cfg.Server.CORS.MaxAge = DefaultCORSMaxAge
	}

	// Store defaults
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = DefaultStoreBackend
	}
	if cfg.Store.ConnectTimeout == 0 {
		cfg.Store.ConnectTimeout = DefaultStoreConnectTimeout
	}
	if cfg.Store.ProbeSchedule == "" {
		cfg.Store.ProbeSchedule = DefaultStoreProbeSchedule
	}
	if cfg.Store.ProbeTimeout == 0 {
		cfg.Store.ProbeTimeout = DefaultStoreProbeTimeout
	}
	if cfg.Store.SQLite.Path == "" {
		cfg.Store.SQLite.Path = DefaultSQLitePath
	}
	if cfg.Store.SQLite.Driver == "" {
		cfg.Store.SQLite.Driver = DefaultSQLiteDriver
	}
	if cfg.Store.SQLite.BusyTimeout == 0 {
		cfg.Store.SQLite.BusyTimeout = DefaultSQLiteBusyTimeout
	}
	if cfg.Store.Postgres.MaxConns == 0 {
		cfg.Store.Postgres.MaxConns = DefaultPostgresMaxConns
	}
	if cfg.Store.Postgres.MinConns == 0 {
		cfg.Store.Postgres.MinConns = DefaultPostgresMinConns
	}
	if cfg.Store.Redis.KeyPrefix == "" {
		cfg.Store.Redis.KeyPrefix = DefaultRedisKeyPrefix
	}
	if cfg.Store.Redis.PoolSize == 0 {
		cfg.Store.Redis.PoolSize = DefaultRedisPoolSize
	}

	// Docs defaults
	if cfg.Docs.Path == "" {
		cfg.Docs.Path = DefaultDocsPath
	}

	// Telemetry defaults
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLogLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLogFormat
	}
	if cfg.Telemetry.Metrics.Path == "" {
		cfg.Telemetry.Metrics.Path = DefaultMetricsPath
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Telemetry.Tracing.Sampler == "" {
		cfg.Telemetry.Tracing.Sampler = DefaultTracingSampler
	}
	if cfg.Telemetry.Tracing.Endpoint == "" {
		cfg.Telemetry.Tracing.Endpoint = DefaultTracingEndpoint
	}
	if cfg.Telemetry.Tracing.ServiceName == "" {
		cfg.Telemetry.Tracing.ServiceName = DefaultTracingServiceName
	}
	if cfg.Telemetry.Tracing.Timeout == 0 {
		cfg.Telemetry.Tracing.Timeout = DefaultTracingTimeout
	}
}
