package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gabrieluxcam/mcp-uxcam-android/internal/app"
)

// debug enables verbose logging across the application.
var serveDebug bool

// silent suppresses all log output; useful when an MCP client is sensitive
// to stderr noise.
var serveSilent bool

// transport/host/port override the server section of the configuration.
var (
	serveTransport string
	serveHost      string
	servePort      int
)

// projectRoot overrides the configured Android project root.
var serveProjectRoot string

// configPath specifies a custom configuration directory path.
// When set, the user configuration directory is not consulted.
var serveConfigPath string

// watch re-verifies the project whenever its Gradle scripts or sources
// change, logging integration drift.
var serveWatch bool

// serveCmd defines the serve command structure. This is the main command of
// uxcam-mcp: it starts the MCP server and blocks until the client
// disconnects or the process is signalled.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the UXCam MCP server",
	Long: `Starts the MCP server exposing the UXCam Android integration tools.

By default the server speaks MCP over stdio, which is how AI assistants
(Cursor, Claude Desktop, ...) launch it. Logs go to stderr so stdout stays
clean for the protocol. Use --transport sse or --transport streamable-http
to expose the server over HTTP instead.

Configuration:
  uxcam-mcp loads ~/.config/uxcam-mcp/config.yaml when present. Use
  --config-path to load config.yaml from a different directory instead.
  Command-line flags override the file configuration.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// runServe is the main entry point for the serve command.
func runServe(cmd *cobra.Command, args []string) error {
	cfg := &app.Config{
		Debug:       serveDebug,
		Silent:      serveSilent,
		ConfigPath:  serveConfigPath,
		Transport:   serveTransport,
		Host:        serveHost,
		Port:        servePort,
		ProjectRoot: serveProjectRoot,
		Watch:       serveWatch,
		Version:     rootCmd.Version,
	}

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return application.Run(ctx)
}

// init registers the serve command and its flags with the root command.
func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable general debug logging")
	serveCmd.Flags().BoolVar(&serveSilent, "silent", false, "Suppress all log output")
	serveCmd.Flags().StringVar(&serveTransport, "transport", "", "Transport to use: stdio, sse or streamable-http (default: stdio)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to for HTTP transports (default: localhost)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port for HTTP transports (default: 8090)")
	serveCmd.Flags().StringVar(&serveProjectRoot, "project-root", "", "Android project root directory (default: current directory)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config-path", "", "Custom configuration directory path")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "Log integration drift as project files change")
}
