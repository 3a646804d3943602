// Package types defines the request and response bodies of the planet
// catalog HTTP API and the helpers that write them.
package types
