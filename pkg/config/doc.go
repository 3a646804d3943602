// Package config provides configuration management for the solar system
// catalog service.
//
// This package handles loading, validating, and managing configuration from
// YAML files with environment variable overrides.
//
// # Configuration Loading
//
//	cfg, err := config.LoadConfigWithEnvOverrides("config.yaml")
//
// An empty path skips the file and starts from defaults, which is how the
// service usually runs inside a container.
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention SOLARSYSTEM_SECTION_FIELD:
//
//   - SOLARSYSTEM_STORE_URI overrides store.uri
//   - SOLARSYSTEM_STORE_PASSWORD overrides store.password
//   - SOLARSYSTEM_SERVER_ENVIRONMENT overrides server.environment
//
// PORT is honoured as well and replaces the port of server.listen_address.
//
// # Configuration Precedence
//
//  1. Default values (defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
package config
