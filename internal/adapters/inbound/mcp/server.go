package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/nutricalc/nutricalc/internal/application"
)

// NewNutricalcMCPServer creates a new MCP server with all nutricalc tools and
// resources registered against svc.
func NewNutricalcMCPServer(svc *application.CalculateService) *server.MCPServer {
	s := server.NewMCPServer(
		"nutricalc",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, svc)
	registerResources(s, svc)

	return s
}
