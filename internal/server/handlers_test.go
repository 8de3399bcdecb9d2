package server

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrieluxcam/mcp-uxcam-android/internal/android"
	"github.com/gabrieluxcam/mcp-uxcam-android/internal/config"
	"github.com/gabrieluxcam/mcp-uxcam-android/internal/integrator"
)

const testSettings = `dependencyResolutionManagement {
    repositories {
        google()
        mavenCentral()
    }
}
rootProject.name = "demo"
`

const testAppBuild = `plugins {
    id 'com.android.application'
}

dependencies {
    implementation 'androidx.core:core-ktx:1.12.0'
}
`

const testApplication = `package com.example

import android.app.Application

class DemoApplication : Application() {
    override fun onCreate() {
        super.onCreate()
    }
}
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func scaffoldProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "settings.gradle"), testSettings)
	writeFile(t, filepath.Join(root, "app", "build.gradle"), testAppBuild)
	writeFile(t, filepath.Join(root, "app", "src", "main", "java", "com", "example", "DemoApplication.kt"), testApplication)
	return root
}

func newTestServer() *Server {
	cfg := config.GetDefaultConfig()
	return New(cfg.Server, "test", integrator.New(cfg))
}

// newCallRequest builds a CallToolRequest carrying the given arguments.
func newCallRequest(args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: struct {
			Name      string    `json:"name"`
			Arguments any       `json:"arguments,omitempty"`
			Meta      *mcp.Meta `json:"_meta,omitempty"`
		}{
			Arguments: args,
		},
	}
}

func textContent(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	content, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok)
	return content.Text
}

func TestHandleAddUXCamAndroid(t *testing.T) {
	root := scaffoldProject(t)
	s := newTestServer()

	result, err := s.handleAddUXCamAndroid(context.Background(), newCallRequest(map[string]interface{}{
		"appKeyRef":   "BuildConfig.UXCAM_KEY",
		"projectRoot": root,
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var payload integrationResult
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &payload))

	assert.NotEmpty(t, payload.RunID)
	assert.True(t, payload.Integrated)
	require.Len(t, payload.Steps, 3)
	assert.Contains(t, payload.Summary, "Added UXCam Maven repo")
	assert.Contains(t, payload.Summary, "Added UXCam dependency")
	assert.Contains(t, payload.Summary, "Inserted init code")

	// The project actually changed.
	data, err := os.ReadFile(filepath.Join(root, "settings.gradle"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "sdk.uxcam.com")
}

func TestHandleAddUXCamAndroid_MissingAppKeyRef(t *testing.T) {
	s := newTestServer()

	result, err := s.handleAddUXCamAndroid(context.Background(), newCallRequest(map[string]interface{}{}))
	require.NoError(t, err) // Handler returns error in result, not as error
	assert.True(t, result.IsError)
	assert.Contains(t, textContent(t, result), "appKeyRef")
}

func TestHandleAddUXCamAndroid_DryRun(t *testing.T) {
	root := scaffoldProject(t)
	s := newTestServer()

	result, err := s.handleAddUXCamAndroid(context.Background(), newCallRequest(map[string]interface{}{
		"appKeyRef":   "BuildConfig.UXCAM_KEY",
		"projectRoot": root,
		"dryRun":      true,
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var payload integrationResult
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &payload))
	assert.True(t, payload.DryRun)

	// No writes happened.
	data, err := os.ReadFile(filepath.Join(root, "settings.gradle"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "sdk.uxcam.com")
}

func TestHandleAddUXCamAndroid_BadRoot(t *testing.T) {
	s := newTestServer()

	result, err := s.handleAddUXCamAndroid(context.Background(), newCallRequest(map[string]interface{}{
		"appKeyRef":   "K",
		"projectRoot": filepath.Join(t.TempDir(), "does-not-exist"),
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, textContent(t, result), "Integration failed")
}

func TestHandleVerifyUXCamAndroid(t *testing.T) {
	root := scaffoldProject(t)
	s := newTestServer()

	result, err := s.handleVerifyUXCamAndroid(context.Background(), newCallRequest(map[string]interface{}{
		"projectRoot": root,
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var payload integrationResult
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &payload))
	assert.False(t, payload.Integrated)

	// Integrate, then verify again.
	_, err = s.handleAddUXCamAndroid(context.Background(), newCallRequest(map[string]interface{}{
		"appKeyRef":   "BuildConfig.UXCAM_KEY",
		"projectRoot": root,
	}))
	require.NoError(t, err)

	result, err = s.handleVerifyUXCamAndroid(context.Background(), newCallRequest(map[string]interface{}{
		"projectRoot": root,
	}))
	require.NoError(t, err)

	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &payload))
	assert.True(t, payload.Integrated)
}

func TestHandleDetectAndroidProject(t *testing.T) {
	root := scaffoldProject(t)
	s := newTestServer()

	result, err := s.handleDetectAndroidProject(context.Background(), newCallRequest(map[string]interface{}{
		"projectRoot": root,
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var info projectInfo
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &info))

	assert.Equal(t, root, info.Root)
	assert.Equal(t, "app", info.AppModule)
	assert.Equal(t, "groovy", info.SettingsDialect)
	require.Len(t, info.ApplicationSources, 1)
	assert.Equal(t, "kotlin", info.ApplicationSources[0].Language)
}

func TestSnippetResources(t *testing.T) {
	handler := snippetResourceHandler(SnippetKotlinResourceURI, android.LanguageKotlin)

	contents, err := handler(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, SnippetKotlinResourceURI, text.URI)
	assert.Contains(t, text.Text, "UXCam.startWithConfiguration")
	assert.Contains(t, text.Text, "import com.uxcam.UXCam")
}
