package cli

import (
	mcpadapter "github.com/authentiq/authentiq/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the authentiq MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start authentiq MCP server (stdio)",
		Long:  "Start the authentiq MCP server using stdio transport. This lets AI assistants score profiles and inspect the scoring configuration.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewAuthentiqMCPServer(configPath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to a scoring config file")

	return cmd
}
