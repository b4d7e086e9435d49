package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vestplan/vestplan/internal/platform/branding"
	"github.com/vestplan/vestplan/internal/services/mcp/domain"
	"github.com/vestplan/vestplan/internal/split"
)

// serverVersion identifies the MCP server version.
const serverVersion = "0.1.0"

// serverName identifies this MCP server to clients.
var serverName = branding.AppName + " MCP"

// Config configures the MCP server.
type Config struct {
	// Policy overrides the default vesting policy when non-zero.
	Policy split.Policy
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
}

// New creates an MCP server with the calculator tools registered.
func New(cfg Config) (*Server, error) {
	policy := cfg.Policy
	if policy == (split.Policy{}) {
		policy = split.DefaultPolicy()
	}
	calc, err := split.New(policy)
	if err != nil {
		return nil, fmt.Errorf("build calculator: %w", err)
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	mcp.AddTool(mcpServer, domain.CalculateSplitTool(), domain.CalculateSplitHandler(calc))
	mcp.AddTool(mcpServer, domain.VestingPolicyTool(), domain.VestingPolicyHandler(calc))

	return &Server{mcpServer: mcpServer}, nil
}

// Run is the service entrypoint for MCP and blocks until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	server, err := New(cfg)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the MCP server on stdio and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport starts the MCP server using the provided transport.
// Context cancellation is the expected shutdown path, not a serve failure.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
