package cmd

import (
	"strings"
	"testing"

	"github.com/gabrieluxcam/mcp-uxcam-android/internal/integrator"
)

func TestNotIntegratedError(t *testing.T) {
	err := &notIntegratedError{missing: 2}

	msg := err.Error()
	if !strings.Contains(msg, "2 step(s)") {
		t.Errorf("Expected error message to mention missing step count, got %q", msg)
	}
}

func TestColorizeStatus(t *testing.T) {
	// Color escape sequences depend on the terminal, so only assert the
	// status text survives.
	statuses := []integrator.StepStatus{
		integrator.StatusAdded,
		integrator.StatusPresent,
		integrator.StatusMissing,
		integrator.StatusSkipped,
		integrator.StatusFailed,
	}

	for _, status := range statuses {
		colored := colorizeStatus(status)
		if !strings.Contains(colored, string(status)) {
			t.Errorf("Expected colorized output for %q to contain the status text, got %q", status, colored)
		}
	}
}

func TestCheckCommandFlags(t *testing.T) {
	for _, name := range []string{"project-root", "app-module", "config-path"} {
		if checkCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected check command to define --%s flag", name)
		}
	}
}

func TestServeCommandFlags(t *testing.T) {
	for _, name := range []string{"debug", "silent", "transport", "host", "port", "project-root", "config-path", "watch"} {
		if serveCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected serve command to define --%s flag", name)
		}
	}
}

func TestCheckCommandRejectsArgs(t *testing.T) {
	if checkCmd.Args == nil {
		t.Fatal("Expected check command to validate positional arguments")
	}

	if err := checkCmd.Args(checkCmd, []string{"extra"}); err == nil {
		t.Error("Expected positional arguments to be rejected")
	}
}
