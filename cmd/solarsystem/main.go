// Solarsystem serves a read-only catalog of the planets of the Solar System.
//
// It answers lookups by id over HTTP, reports liveness and readiness derived
// from the connection to its catalog store, and publishes the API
// description document.
//
// Usage:
//
//	# Start server with default configuration
//	solarsystem run
//
//	# Start with custom configuration file
//	solarsystem run --config /path/to/config.yaml
//
//	# Provision the catalog store with the eight planets
//	solarsystem seed
//
//	# Show version information
//	solarsystem version
package main

import (
	"os"

	"mercator-hq/solarsystem/pkg/cli"
)

func main() {
	os.Exit(cli.ExitCode(Execute()))
}
