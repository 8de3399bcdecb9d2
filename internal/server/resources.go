package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/gabrieluxcam/mcp-uxcam-android/internal/android"
	"github.com/gabrieluxcam/mcp-uxcam-android/internal/snippet"
)

// Resource URIs for the init code previews.
const (
	SnippetJavaResourceURI   = "uxcam://snippet/java"
	SnippetKotlinResourceURI = "uxcam://snippet/kotlin"
)

// placeholderKeyExpr is used in previews; the real expression is supplied by
// the add_uxcam_android caller.
const placeholderKeyExpr = "BuildConfig.UXCAM_KEY"

// registerResources registers the snippet preview resources. They let a
// client show the developer what add_uxcam_android would insert, without
// touching the project.
func (s *Server) registerResources() {
	javaResource := mcp.NewResource(
		SnippetJavaResourceURI,
		"UXCam initialization code that gets injected into a Java Application class",
	)
	s.mcpServer.AddResource(javaResource, snippetResourceHandler(SnippetJavaResourceURI, android.LanguageJava))

	kotlinResource := mcp.NewResource(
		SnippetKotlinResourceURI,
		"UXCam initialization code that gets injected into a Kotlin Application class",
	)
	s.mcpServer.AddResource(kotlinResource, snippetResourceHandler(SnippetKotlinResourceURI, android.LanguageKotlin))
}

func snippetResourceHandler(uri string, lang android.Language) func(context.Context, mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		text, err := snippet.Render(lang, placeholderKeyExpr)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uri,
				MIMEType: "text/plain",
				Text:     text,
			},
		}, nil
	}
}
