package server

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// registerTools registers all MCP tools.
func (s *Server) registerTools() {
	// Integrate the SDK
	addTool := mcp.NewTool("add_uxcam_android",
		mcp.WithDescription("Add UXCam SDK (v3.+) & init call to an Android project"),
		mcp.WithString("appKeyRef",
			mcp.Required(),
			mcp.Description(`Reference used in code - e.g. BuildConfig.UXCAM_KEY or "MY_KEY"`),
		),
		mcp.WithString("projectRoot",
			mcp.Description("Android project root directory (default: configured project root)"),
		),
		mcp.WithBoolean("dryRun",
			mcp.Description("Compute the integration report without writing any file (default: false)"),
		),
	)
	s.mcpServer.AddTool(addTool, s.handleAddUXCamAndroid)

	// Verify the integration
	verifyTool := mcp.NewTool("verify_uxcam_android",
		mcp.WithDescription("Check whether the UXCam SDK is fully integrated into an Android project"),
		mcp.WithString("projectRoot",
			mcp.Description("Android project root directory (default: configured project root)"),
		),
	)
	s.mcpServer.AddTool(verifyTool, s.handleVerifyUXCamAndroid)

	// Describe the project
	detectTool := mcp.NewTool("detect_android_project",
		mcp.WithDescription("Inspect an Android project: Gradle scripts, dialects, Application class candidates"),
		mcp.WithString("projectRoot",
			mcp.Description("Android project root directory (default: configured project root)"),
		),
	)
	s.mcpServer.AddTool(detectTool, s.handleDetectAndroidProject)
}
