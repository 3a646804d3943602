package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every environment variable override.
const EnvPrefix = "SOLARSYSTEM_"

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any errors.
// An empty path yields the default configuration.
// The configuration is not modified by environment variables; use LoadConfigWithEnvOverrides
// for that functionality.
func LoadConfig(path string) (*Config, error) {
	cfg, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention SOLARSYSTEM_SECTION_FIELD (e.g., SOLARSYSTEM_STORE_URI).
// Environment variables always take precedence over file-based configuration.
//
// The loading sequence is:
// 1. Load YAML from file (skipped when path is empty)
// 2. Apply default values
// 3. Apply environment variable overrides
// 4. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadFile parses the YAML file at path on top of the defaults.
func loadFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(cfg)

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	// PORT is the conventional container variable; the explicit listen
	// address below still wins when both are set.
	if val := os.Getenv("PORT"); val != "" {
		host, _, err := net.SplitHostPort(cfg.Server.ListenAddress)
		if err != nil {
			host = ""
		}
		cfg.Server.ListenAddress = net.JoinHostPort(host, val)
	}

	// Server overrides
	setString(&cfg.Server.ListenAddress, "SERVER_LISTEN_ADDRESS")
	setString(&cfg.Server.Environment, "SERVER_ENVIRONMENT")
	setString(&cfg.Server.StaticDir, "SERVER_STATIC_DIR")
	setInt(&cfg.Server.NotFoundStatus, "SERVER_NOT_FOUND_STATUS")
	setInt(&cfg.Server.NotReadyStatus, "SERVER_NOT_READY_STATUS")
	setDuration(&cfg.Server.ReadTimeout, "SERVER_READ_TIMEOUT")
	setDuration(&cfg.Server.WriteTimeout, "SERVER_WRITE_TIMEOUT")
	setDuration(&cfg.Server.ShutdownTimeout, "SERVER_SHUTDOWN_TIMEOUT")
	setBool(&cfg.Server.CORS.Enabled, "SERVER_CORS_ENABLED")

	// Store overrides
	setString(&cfg.Store.Backend, "STORE_BACKEND")
	setString(&cfg.Store.URI, "STORE_URI")
	setString(&cfg.Store.Username, "STORE_USERNAME")
	setString(&cfg.Store.Password, "STORE_PASSWORD")
	setDuration(&cfg.Store.ConnectTimeout, "STORE_CONNECT_TIMEOUT")
	setString(&cfg.Store.ProbeSchedule, "STORE_PROBE_SCHEDULE")
	setDuration(&cfg.Store.ProbeTimeout, "STORE_PROBE_TIMEOUT")
	setString(&cfg.Store.SQLite.Path, "STORE_SQLITE_PATH")
	setString(&cfg.Store.SQLite.Driver, "STORE_SQLITE_DRIVER")
	setString(&cfg.Store.Redis.KeyPrefix, "STORE_REDIS_KEY_PREFIX")

	// Docs overrides
	setString(&cfg.Docs.Path, "DOCS_PATH")
	setBool(&cfg.Docs.Watch, "DOCS_WATCH")

	// Telemetry overrides
	setString(&cfg.Telemetry.Logging.Level, "TELEMETRY_LOGGING_LEVEL")
	setString(&cfg.Telemetry.Logging.Format, "TELEMETRY_LOGGING_FORMAT")
	setBool(&cfg.Telemetry.Metrics.Enabled, "TELEMETRY_METRICS_ENABLED")
	setString(&cfg.Telemetry.Metrics.Path, "TELEMETRY_METRICS_PATH")
	setBool(&cfg.Telemetry.Tracing.Enabled, "TELEMETRY_TRACING_ENABLED")
	setString(&cfg.Telemetry.Tracing.Endpoint, "TELEMETRY_TRACING_ENDPOINT")
	if val := os.Getenv(EnvPrefix + "TELEMETRY_TRACING_SAMPLE_RATIO"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.Telemetry.Tracing.SampleRatio = f
		}
	}
}

func setString(dst *string, key string) {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		*dst = val
	}
}

func setInt(dst *int, key string) {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			*dst = i
		}
	}
}

func setBool(dst *bool, key string) {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			*dst = d
		}
	}
}
