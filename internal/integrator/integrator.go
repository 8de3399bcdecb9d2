package integrator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/gabrieluxcam/mcp-uxcam-android/internal/android"
	"github.com/gabrieluxcam/mcp-uxcam-android/internal/config"
	"github.com/gabrieluxcam/mcp-uxcam-android/internal/gradle"
	"github.com/gabrieluxcam/mcp-uxcam-android/internal/snippet"
	"github.com/gabrieluxcam/mcp-uxcam-android/pkg/logging"
)

// Integrator applies and verifies the UXCam SDK integration on an Android
// project. All methods are safe to call repeatedly; edits are idempotent.
type Integrator struct {
	sdk     config.SDKConfig
	project config.ProjectConfig
}

// New creates an Integrator with the given configuration defaults.
func New(cfg config.Config) *Integrator {
	return &Integrator{
		sdk:     cfg.SDK,
		project: cfg.Project,
	}
}

// Options configures a single integration run.
type Options struct {
	// ProjectRoot overrides the configured project root when non-empty.
	ProjectRoot string
	// AppKeyExpr is the expression the rendered init code assigns to the
	// UXCam app key: BuildConfig.UXCAM_KEY or a quoted literal.
	AppKeyExpr string
	// DryRun computes the report without writing any file.
	DryRun bool
}

// root resolves the effective project root.
func (i *Integrator) root(override string) string {
	if override != "" {
		return override
	}
	if i.project.Root != "" {
		return i.project.Root
	}
	return "."
}

// Scan discovers the project at the effective root.
func (i *Integrator) Scan(ctx context.Context, rootOverride string) (*android.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return android.Scan(i.root(rootOverride), i.project.AppModule)
}

// Run applies the three integration steps (Maven repository, SDK dependency,
// init code) to the project. Missing files degrade to failed or skipped
// steps in the report; only unexpected I/O errors abort the run.
func (i *Integrator) Run(ctx context.Context, opts Options) (*Report, error) {
	project, err := i.Scan(ctx, opts.ProjectRoot)
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:  uuid.NewString(),
		DryRun: opts.DryRun,
	}

	report.Steps = append(report.Steps, i.addMavenRepo(project, opts.DryRun))
	report.Steps = append(report.Steps, i.addDependency(project, opts.DryRun))
	report.Steps = append(report.Steps, i.injectInit(project, opts.AppKeyExpr, opts.DryRun))

	logging.Info("Integrator", "Run %s on %s: %s", report.RunID, project.Root, report.Summary())
	return report, nil
}

// addMavenRepo ensures the UXCam Maven repository is declared in the
// settings script.
func (i *Integrator) addMavenRepo(project *android.Project, dryRun bool) Step {
	step := Step{Name: StepMavenRepository}

	if project.SettingsScript == "" {
		step.Status = StatusFailed
		step.Detail = "settings.gradle file not found"
		return step
	}
	step.File = project.SettingsScript

	script, err := gradle.LoadScript(project.SettingsScript)
	if err != nil {
		step.Status = StatusFailed
		step.Detail = err.Error()
		return step
	}

	changed, err := script.EnsureMavenRepo(i.sdk.MavenRepository)
	if err != nil {
		step.Status = StatusFailed
		step.Detail = err.Error()
		return step
	}
	if !changed {
		step.Status = StatusPresent
		step.Detail = "Maven repo already present"
		return step
	}

	if !dryRun {
		if err := script.Save(); err != nil {
			step.Status = StatusFailed
			step.Detail = err.Error()
			return step
		}
	}

	step.Status = StatusAdded
	step.Detail = fmt.Sprintf("Added UXCam Maven repo in %s", filepath.Base(script.Path))
	return step
}

// addDependency ensures the SDK dependency is declared in the app module
// build script.
func (i *Integrator) addDependency(project *android.Project, dryRun bool) Step {
	step := Step{Name: StepSDKDependency}

	if project.AppBuildScript == "" {
		step.Status = StatusFailed
		step.Detail = fmt.Sprintf("%s/build.gradle file not found", i.project.AppModule)
		return step
	}
	step.File = project.AppBuildScript

	script, err := gradle.LoadScript(project.AppBuildScript)
	if err != nil {
		step.Status = StatusFailed
		step.Detail = err.Error()
		return step
	}

	changed, err := script.EnsureDependency(i.sdk.Dependency)
	if err != nil {
		step.Status = StatusFailed
		step.Detail = err.Error()
		return step
	}
	if !changed {
		step.Status = StatusPresent
		step.Detail = "Dependency already present"
		return step
	}

	if !dryRun {
		if err := script.Save(); err != nil {
			step.Status = StatusFailed
			step.Detail = err.Error()
			return step
		}
	}

	step.Status = StatusAdded
	step.Detail = fmt.Sprintf("Added UXCam dependency in %s", filepath.Base(script.Path))
	return step
}

// injectInit ensures the UXCam initialization call is present in the
// project's Application class.
func (i *Integrator) injectInit(project *android.Project, appKeyExpr string, dryRun bool) Step {
	step := Step{Name: StepInitCode}

	source := project.PreferredApplicationSource()
	if source == nil {
		step.Status = StatusSkipped
		step.Detail = "No Application class found (wizard will fall back to Activity)"
		return step
	}
	step.File = source.Path

	data, err := os.ReadFile(source.Path)
	if err != nil {
		step.Status = StatusFailed
		step.Detail = err.Error()
		return step
	}
	content := string(data)

	if containsInitCall(content) {
		step.Status = StatusPresent
		step.Detail = fmt.Sprintf("Init already present in %s", filepath.Base(source.Path))
		return step
	}

	updated, err := injectIntoSource(content, source.Language, appKeyExpr)
	if err != nil {
		if errors.Is(err, errNoOnCreate) {
			step.Status = StatusFailed
			step.Detail = fmt.Sprintf("No onCreate method found in %s", filepath.Base(source.Path))
			return step
		}
		step.Status = StatusFailed
		step.Detail = err.Error()
		return step
	}

	if !dryRun {
		if err := writePreservingMode(source.Path, updated); err != nil {
			step.Status = StatusFailed
			step.Detail = err.Error()
			return step
		}
	}

	step.Status = StatusAdded
	step.Detail = fmt.Sprintf("Inserted init code in %s", filepath.Base(source.Path))
	return step
}

// Verify reports the current state of each integration point without
// touching any file.
func (i *Integrator) Verify(ctx context.Context, rootOverride string) (*Report, error) {
	project, err := i.Scan(ctx, rootOverride)
	if err != nil {
		return nil, err
	}

	report := &Report{RunID: uuid.NewString()}
	report.Steps = append(report.Steps,
		i.verifyMavenRepo(project),
		i.verifyDependency(project),
		i.verifyInit(project),
	)
	return report, nil
}

func (i *Integrator) verifyMavenRepo(project *android.Project) Step {
	step := Step{Name: StepMavenRepository, Status: StatusMissing, Detail: "Maven repo not declared"}
	if project.SettingsScript == "" {
		step.Detail = "settings.gradle file not found"
		return step
	}
	step.File = project.SettingsScript

	script, err := gradle.LoadScript(project.SettingsScript)
	if err != nil {
		step.Status = StatusFailed
		step.Detail = err.Error()
		return step
	}
	if script.Contains(gradle.MavenRepoSnippet(script.Dialect, i.sdk.MavenRepository)) {
		step.Status = StatusPresent
		step.Detail = fmt.Sprintf("Maven repo declared in %s", filepath.Base(script.Path))
	}
	return step
}

func (i *Integrator) verifyDependency(project *android.Project) Step {
	step := Step{Name: StepSDKDependency, Status: StatusMissing, Detail: "Dependency not declared"}
	if project.AppBuildScript == "" {
		step.Detail = fmt.Sprintf("%s/build.gradle file not found", i.project.AppModule)
		return step
	}
	step.File = project.AppBuildScript

	script, err := gradle.LoadScript(project.AppBuildScript)
	if err != nil {
		step.Status = StatusFailed
		step.Detail = err.Error()
		return step
	}
	if script.Contains(gradle.DependencyLine(script.Dialect, i.sdk.Dependency)) {
		step.Status = StatusPresent
		step.Detail = fmt.Sprintf("Dependency declared in %s", filepath.Base(script.Path))
	}
	return step
}

func (i *Integrator) verifyInit(project *android.Project) Step {
	step := Step{Name: StepInitCode, Status: StatusMissing, Detail: "Init code not found"}

	source := project.PreferredApplicationSource()
	if source == nil {
		step.Detail = "No Application class found"
		return step
	}
	step.File = source.Path

	data, err := os.ReadFile(source.Path)
	if err != nil {
		step.Status = StatusFailed
		step.Detail = err.Error()
		return step
	}
	if containsInitCall(string(data)) {
		step.Status = StatusPresent
		step.Detail = fmt.Sprintf("Init code present in %s", filepath.Base(source.Path))
	}
	return step
}

func containsInitCall(content string) bool {
	return strings.Contains(content, snippet.InitMarker)
}

func writePreservingMode(path, content string) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	return os.WriteFile(path, []byte(content), mode)
}
