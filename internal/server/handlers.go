package server

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gabrieluxcam/mcp-uxcam-android/internal/android"
	"github.com/gabrieluxcam/mcp-uxcam-android/internal/integrator"
)

// integrationResult is the JSON payload returned by add_uxcam_android and
// verify_uxcam_android. The summary line mirrors the step details so clients
// can show a one-line outcome without walking the steps.
type integrationResult struct {
	RunID      string            `json:"runId"`
	DryRun     bool              `json:"dryRun,omitempty"`
	Integrated bool              `json:"integrated"`
	Steps      []integrator.Step `json:"steps"`
	Summary    string            `json:"summary"`
}

func newIntegrationResult(report *integrator.Report) integrationResult {
	return integrationResult{
		RunID:      report.RunID,
		DryRun:     report.DryRun,
		Integrated: report.Integrated(),
		Steps:      report.Steps,
		Summary:    report.Summary(),
	}
}

// handleAddUXCamAndroid handles the add_uxcam_android MCP tool. It applies
// the three integration steps and returns the resulting report as JSON.
func (s *Server) handleAddUXCamAndroid(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	appKeyRef, err := request.RequireString("appKeyRef")
	if err != nil {
		return mcp.NewToolResultError("appKeyRef argument is required"), nil
	}

	opts := integrator.Options{
		AppKeyExpr:  appKeyRef,
		ProjectRoot: request.GetString("projectRoot", ""),
		DryRun:      request.GetBool("dryRun", false),
	}

	report, err := s.integrator.Run(ctx, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Integration failed: %v", err)), nil
	}

	return jsonToolResult(newIntegrationResult(report))
}

// handleVerifyUXCamAndroid handles the verify_uxcam_android MCP tool. It
// reports the current state of each integration point without touching any
// file.
func (s *Server) handleVerifyUXCamAndroid(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	report, err := s.integrator.Verify(ctx, request.GetString("projectRoot", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Verification failed: %v", err)), nil
	}

	return jsonToolResult(newIntegrationResult(report))
}

// projectInfo is the JSON payload returned by detect_android_project.
type projectInfo struct {
	Root                string       `json:"root"`
	AppModule           string       `json:"appModule"`
	SettingsScript      string       `json:"settingsScript,omitempty"`
	SettingsDialect     string       `json:"settingsDialect,omitempty"`
	AppBuildScript      string       `json:"appBuildScript,omitempty"`
	AppBuildDialect     string       `json:"appBuildDialect,omitempty"`
	ManifestApplication string       `json:"manifestApplication,omitempty"`
	ApplicationSources  []sourceInfo `json:"applicationSources"`
}

type sourceInfo struct {
	Path     string `json:"path"`
	Language string `json:"language"`
}

// handleDetectAndroidProject handles the detect_android_project MCP tool.
func (s *Server) handleDetectAndroidProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	project, err := s.integrator.Scan(ctx, request.GetString("projectRoot", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Project scan failed: %v", err)), nil
	}

	return jsonToolResult(describeProject(project))
}

func describeProject(project *android.Project) projectInfo {
	info := projectInfo{
		Root:                project.Root,
		AppModule:           project.AppModule,
		SettingsScript:      project.SettingsScript,
		AppBuildScript:      project.AppBuildScript,
		ManifestApplication: project.ManifestApplication,
		ApplicationSources:  make([]sourceInfo, 0, len(project.ApplicationSources)),
	}
	if project.SettingsScript != "" {
		info.SettingsDialect = project.SettingsDialect.String()
	}
	if project.AppBuildScript != "" {
		info.AppBuildDialect = project.AppBuildDialect.String()
	}
	for _, src := range project.ApplicationSources {
		info.ApplicationSources = append(info.ApplicationSources, sourceInfo{
			Path:     filepath.ToSlash(src.Path),
			Language: src.Language.String(),
		})
	}
	return info
}

// jsonToolResult marshals v and wraps it as a text tool result.
func jsonToolResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
