package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/facturo/facturo/internal/application"
)

// NewFacturoMCPServer creates an MCP server exposing the billing
// operations as tools and resources, so AI assistants can work with
// the same API the interactive shell talks to.
func NewFacturoMCPServer(services *application.Services) *server.MCPServer {
	s := server.NewMCPServer(
		"facturo",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, services)
	registerResources(s, services)

	return s
}
