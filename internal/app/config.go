package app

// Config carries the CLI-level settings of a serve invocation. It is
// produced by the cobra layer and consumed by NewApplication; values left
// zero fall back to the loaded file configuration.
type Config struct {
	// Debug enables verbose logging across the application.
	Debug bool

	// Silent suppresses all log output. Useful when an MCP client is
	// sensitive to stderr noise.
	Silent bool

	// ConfigPath is a custom configuration directory. When set, the user
	// configuration directory is not consulted.
	ConfigPath string

	// Transport, Host and Port override the server section of the file
	// configuration when non-zero.
	Transport string
	Host      string
	Port      int

	// ProjectRoot overrides the configured Android project root.
	ProjectRoot string

	// Watch re-verifies the project whenever its Gradle scripts or sources
	// change, logging integration drift.
	Watch bool

	// Version is the build version reported to MCP clients.
	Version string
}
