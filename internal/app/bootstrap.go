package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gabrieluxcam/mcp-uxcam-android/internal/config"
	"github.com/gabrieluxcam/mcp-uxcam-android/internal/integrator"
	"github.com/gabrieluxcam/mcp-uxcam-android/internal/server"
	"github.com/gabrieluxcam/mcp-uxcam-android/pkg/logging"
)

// Application bootstraps and runs the UXCam MCP server. Construction loads
// configuration, initializes logging and wires the integrator into the MCP
// server; Run blocks until shutdown.
type Application struct {
	config     *Config
	settings   config.Config
	integrator *integrator.Integrator
	server     *server.Server
	watcher    *integrator.Watcher
}

// NewApplication creates and initializes an application instance: logging
// first (so configuration loading can log), then configuration with CLI
// overrides applied, then the integrator and server.
func NewApplication(cfg *Config) (*Application, error) {
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}

	// Stdout belongs to the stdio transport; logs always go to stderr.
	var logOutput io.Writer = os.Stderr
	if cfg.Silent {
		logOutput = io.Discard
	}
	logging.Init(appLogLevel, logOutput)

	var settings config.Config
	var err error
	if cfg.ConfigPath != "" {
		settings, err = config.LoadConfigFromPath(cfg.ConfigPath)
	} else {
		settings, err = config.LoadConfig()
	}
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load configuration")
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	applyOverrides(&settings, cfg)

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	integ := integrator.New(settings)

	app := &Application{
		config:     cfg,
		settings:   settings,
		integrator: integ,
		server:     server.New(settings.Server, cfg.Version, integ),
	}

	if cfg.Watch {
		app.watcher = integrator.NewWatcher(
			settings.Project.Root,
			settings.Project.AppModule,
			500*time.Millisecond,
			app.reportDrift,
		)
	}

	return app, nil
}

// applyOverrides copies non-zero CLI settings over the file configuration.
func applyOverrides(settings *config.Config, cfg *Config) {
	if cfg.Transport != "" {
		settings.Server.Transport = cfg.Transport
	}
	if cfg.Host != "" {
		settings.Server.Host = cfg.Host
	}
	if cfg.Port != 0 {
		settings.Server.Port = cfg.Port
	}
	if cfg.ProjectRoot != "" {
		settings.Project.Root = cfg.ProjectRoot
	}
}

// Run executes the application until the context is cancelled or the MCP
// client disconnects.
func (a *Application) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	if a.watcher != nil {
		if err := a.watcher.Start(ctx); err != nil {
			logging.Warn("Bootstrap", "Project watcher unavailable: %v", err)
		} else {
			defer a.watcher.Stop()
			logging.Info("Bootstrap", "Watching %s for integration-relevant changes", a.settings.Project.Root)
		}
	}

	g.Go(func() error {
		return a.server.Run(ctx)
	})

	return g.Wait()
}

// reportDrift logs the current integration status. It runs on the watcher
// goroutine after the project settles.
func (a *Application) reportDrift() {
	report, err := a.integrator.Verify(context.Background(), "")
	if err != nil {
		logging.Error("Watch", err, "Failed to verify project after change")
		return
	}
	if report.Integrated() {
		logging.Info("Watch", "Project fully integrated: %s", report.Summary())
	} else {
		logging.Warn("Watch", "Integration incomplete: %s", report.Summary())
	}
}
