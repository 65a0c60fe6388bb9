package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewAuthentiqMCPServer creates a new MCP server with the scoring tools
// registered. configPath selects the effective configuration file; empty
// means defaults with an optional .authentiq.yaml pickup.
func NewAuthentiqMCPServer(configPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"authentiq",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, configPath)

	return s
}
