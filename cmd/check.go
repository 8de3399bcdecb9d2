package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/gabrieluxcam/mcp-uxcam-android/internal/config"
	"github.com/gabrieluxcam/mcp-uxcam-android/internal/integrator"
	"github.com/gabrieluxcam/mcp-uxcam-android/pkg/logging"
)

var (
	checkProjectRoot string
	checkAppModule   string
	checkConfigPath  string
)

// notIntegratedError signals that the audited project is missing at least
// one integration point. It maps to ExitCodeNotIntegrated.
type notIntegratedError struct {
	missing int
}

func (e *notIntegratedError) Error() string {
	return fmt.Sprintf("UXCam integration incomplete: %d step(s) not in place", e.missing)
}

// checkCmd audits an Android project offline and prints one row per
// integration point.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Audit the UXCam integration status of an Android project",
	Long: `Scans an Android project and reports, without modifying anything, whether
the UXCam Maven repository, the SDK dependency and the initialization call
are in place.

Exit codes: 0 when fully integrated, 2 when steps are missing, 1 on errors.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	// Only warnings and errors; the table is the output.
	logging.Init(logging.LevelWarn, os.Stderr)

	var cfg config.Config
	var err error
	if checkConfigPath != "" {
		cfg, err = config.LoadConfigFromPath(checkConfigPath)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if checkProjectRoot != "" {
		cfg.Project.Root = checkProjectRoot
	}
	if checkAppModule != "" {
		cfg.Project.AppModule = checkAppModule
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " Scanning Android project..."
	s.Start()
	report, err := integrator.New(cfg).Verify(ctx, "")
	s.Stop()
	if err != nil {
		return fmt.Errorf("failed to scan project %s: %w", cfg.Project.Root, err)
	}

	renderReport(report)

	if !report.Integrated() {
		missing := 0
		for _, step := range report.Steps {
			if step.Status != integrator.StatusPresent {
				missing++
			}
		}
		return &notIntegratedError{missing: missing}
	}

	fmt.Println(text.FgGreen.Sprint("UXCam is fully integrated."))
	return nil
}

// renderReport prints the verification report as a table on stdout.
func renderReport(report *integrator.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Step", "Status", "File", "Detail"})
	for _, step := range report.Steps {
		t.AppendRow(table.Row{step.Name, colorizeStatus(step.Status), step.File, step.Detail})
	}
	t.Render()
}

func colorizeStatus(status integrator.StepStatus) string {
	switch status {
	case integrator.StatusPresent, integrator.StatusAdded:
		return text.FgGreen.Sprint(string(status))
	case integrator.StatusMissing, integrator.StatusSkipped:
		return text.FgYellow.Sprint(string(status))
	default:
		return text.FgRed.Sprint(string(status))
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkProjectRoot, "project-root", "", "Android project root directory (default: current directory)")
	checkCmd.Flags().StringVar(&checkAppModule, "app-module", "", "Application module name (default: app)")
	checkCmd.Flags().StringVar(&checkConfigPath, "config-path", "", "Custom configuration directory path")
}
