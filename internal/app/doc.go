// Package app bootstraps the UXCam MCP server: logging, configuration
// loading with CLI overrides, integrator and server construction, and the
// run loop with optional project watching.
//
// The cobra commands in cmd/ translate flags into a Config and hand off to
// NewApplication / Run; everything else lives behind the internal packages.
package app
