package mcp

import (
	"context"
	"fmt"
	"log"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server serves the game state tools to one connected agent
type Server struct {
	mcpServer *mcpsdk.Server
}

// ServerConfig holds configuration for the server
type ServerConfig struct {
	Name    string
	Version string
	Handler *Handler
}

// NewServer creates a server with every tool registered
func NewServer(cfg *ServerConfig) *Server {
	if cfg == nil || cfg.Handler == nil {
		panic("handler is required")
	}

	mcpServer := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name:    cfg.Name,
		Version: cfg.Version,
	}, nil)
	cfg.Handler.Register(mcpServer)

	return &Server{mcpServer: mcpServer}
}

// Run serves over stdin and stdout until the client disconnects or ctx ends
func (s *Server) Run(ctx context.Context) error {
	return s.RunWithTransport(ctx, &mcpsdk.StdioTransport{})
}

// RunWithTransport serves over the given transport
func (s *Server) RunWithTransport(ctx context.Context, transport mcpsdk.Transport) error {
	log.Println("MCP server listening")
	if err := s.mcpServer.Run(ctx, transport); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
