package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/inventory/internal/application"
)

// NewInventoryMCPServer creates an MCP server exposing svc through tools and
// resources. Tool calls may arrive concurrently; svc serializes them.
func NewInventoryMCPServer(svc *application.InventoryService, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"inventory",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, svc)
	registerResources(s, svc)

	return s
}
