package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeNotIntegrated indicates a check found the UXCam integration incomplete.
	ExitCodeNotIntegrated = 2
)

// rootCmd represents the base command for the uxcam-mcp application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "uxcam-mcp",
	Short: "MCP server that wires the UXCam Android SDK into Gradle projects",
	Long: `uxcam-mcp is a Model Context Protocol server exposing tools that add the
UXCam Android SDK to an Android project: it declares the UXCam Maven
repository, adds the SDK dependency to the app module, and injects the
initialization call into the Application class.

Run 'uxcam-mcp serve' to start the server (stdio transport by default, for
use from AI assistants), or 'uxcam-mcp check' to audit a project offline.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// It initializes and executes the root command, which in turn handles subcommands and flags.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "uxcam-mcp version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	if _, ok := err.(*notIntegratedError); ok {
		return ExitCodeNotIntegrated
	}
	return ExitCodeError
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
