// Package handlers provides the HTTP handlers of the planet catalog.
//
// Each handler parses its request, validates the shape, calls one component
// and maps the result to a JSON response:
//
//   - PlanetHandler: POST /planets, catalog lookup by id
//   - SystemHandler: GET /os, host and environment introspection
//   - StaticHandler: GET /, files under the static directory, and the JSON
//     404 for anything not routed elsewhere
//
// Health and documentation endpoints live in the health and docs packages.
// No error escapes a handler: every failure becomes a status code and a
// {"message": ...} body.
package handlers
