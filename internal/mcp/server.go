package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with its RAG dependency.
type Server struct {
	server  *mcp.Server
	service RAG
}

// Config holds server dependencies.
type Config struct {
	Service RAG
}

// NewServer creates a configured MCP server with tools registered.
func NewServer(cfg *Config) *Server {
	impl := &mcp.Implementation{
		Name:    "health-buddy-server",
		Version: "v0.1.0",
	}

	server := mcp.NewServer(impl, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ask_medical",
		Description: "Answer a health question grounded in the indexed medical reference. Returns the generated answer, or a fixed message when no relevant context exists.",
	}, makeAskHandler(cfg.Service))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_medical_context",
		Description: "Retrieve the most similar medical reference chunks for a query, with similarity scores. No answer generation.",
	}, makeSearchHandler(cfg.Service))

	return &Server{
		server:  server,
		service: cfg.Service,
	}
}

// Run starts the server with stdio transport (blocks until client disconnects).
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// MCPServer returns the underlying MCP server instance.
// Used by transport handlers that need to wrap the server.
func (s *Server) MCPServer() *mcp.Server {
	return s.server
}
