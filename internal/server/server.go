package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/gabrieluxcam/mcp-uxcam-android/internal/config"
	"github.com/gabrieluxcam/mcp-uxcam-android/internal/integrator"
	"github.com/gabrieluxcam/mcp-uxcam-android/pkg/logging"
)

// ServerName identifies this MCP server towards clients.
const ServerName = "uxcam-android"

// Server exposes the UXCam Android integration as an MCP server. It wraps a
// single Integrator and serves it over the configured transport: stdio for
// AI assistant integration (the default), or SSE / streamable HTTP for
// network clients.
type Server struct {
	cfg        config.ServerConfig
	integrator *integrator.Integrator

	mcpServer *server.MCPServer

	// Transport-specific servers, set while running.
	mu                   sync.Mutex
	sseServer            *server.SSEServer
	streamableHTTPServer *server.StreamableHTTPServer
	stdioServer          *server.StdioServer

	// stdio streams, overridable for tests.
	stdin  io.Reader
	stdout io.Writer
}

// New creates a Server with all tools and resources registered.
func New(cfg config.ServerConfig, version string, integ *integrator.Integrator) *Server {
	mcpServer := server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s := &Server{
		cfg:        cfg,
		integrator: integ,
		mcpServer:  mcpServer,
		stdin:      os.Stdin,
		stdout:     os.Stdout,
	}

	s.registerTools()
	s.registerResources()

	return s
}

// Run serves MCP requests until the context is cancelled or, for the stdio
// transport, the client closes the connection. It blocks.
func (s *Server) Run(ctx context.Context) error {
	switch s.cfg.Transport {
	case config.TransportSSE:
		return s.runSSE(ctx)
	case config.TransportStreamableHTTP:
		return s.runStreamableHTTP(ctx)
	case config.TransportStdio:
		fallthrough
	default:
		return s.runStdio(ctx)
	}
}

func (s *Server) runStdio(ctx context.Context) error {
	logging.Info("Server", "Starting MCP server with stdio transport")

	stdioServer := server.NewStdioServer(s.mcpServer)
	s.mu.Lock()
	s.stdioServer = stdioServer
	s.mu.Unlock()

	err := stdioServer.Listen(ctx, s.stdin, s.stdout)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio server error: %w", err)
	}
	return nil
}

func (s *Server) runSSE(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	baseURL := fmt.Sprintf("http://%s", addr)
	logging.Info("Server", "Starting MCP server with SSE transport on %s", addr)

	sseServer := server.NewSSEServer(
		s.mcpServer,
		server.WithBaseURL(baseURL),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
		server.WithKeepAlive(true),
		server.WithKeepAliveInterval(30*time.Second),
	)
	s.mu.Lock()
	s.sseServer = sseServer
	s.mu.Unlock()

	go s.shutdownOnDone(ctx, func(shutdownCtx context.Context) error {
		return sseServer.Shutdown(shutdownCtx)
	})

	if err := sseServer.Start(addr); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("SSE server error: %w", err)
	}
	return nil
}

func (s *Server) runStreamableHTTP(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	logging.Info("Server", "Starting MCP server with streamable-http transport on %s", addr)

	streamableServer := server.NewStreamableHTTPServer(s.mcpServer)
	s.mu.Lock()
	s.streamableHTTPServer = streamableServer
	s.mu.Unlock()

	go s.shutdownOnDone(ctx, func(shutdownCtx context.Context) error {
		return streamableServer.Shutdown(shutdownCtx)
	})

	if err := streamableServer.Start(addr); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("streamable HTTP server error: %w", err)
	}
	return nil
}

// shutdownOnDone waits for the context, then shuts the transport down with a
// bounded grace period.
func (s *Server) shutdownOnDone(ctx context.Context, shutdown func(context.Context) error) {
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := shutdown(shutdownCtx); err != nil {
		logging.Error("Server", err, "Error shutting down transport")
	}
}
