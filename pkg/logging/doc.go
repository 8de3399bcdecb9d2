// Package logging provides a structured logging system built on Go's standard
// slog package, with subsystem-tagged entries and level filtering.
//
// All log entries include a timestamp, level, subsystem identifier, message,
// and optional error information. Subsystems ("Bootstrap", "Config", "Server",
// "Integrator", ...) categorize entries so output can be filtered per area.
//
// The output writer is chosen by the caller. The stdio MCP transport owns
// stdout, so the server always logs to stderr:
//
//	logging.Init(logging.LevelInfo, os.Stderr)
//	logging.Info("Bootstrap", "starting up")
//	logging.Error("Gradle", err, "failed to update %s", path)
package logging
