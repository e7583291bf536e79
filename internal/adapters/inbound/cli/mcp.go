package cli

import (
	"io"

	mcpadapter "github.com/nutricalc/nutricalc/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the nutricalc MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var configDir string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start nutricalc MCP server (stdio)",
		Long:  "Start the nutricalc MCP server using stdio transport. This lets AI assistants run calculations and read the catalogs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			// stdout carries the protocol, so logs are dropped.
			svc, err := newCalculateService(configDir, 0, newLogger(io.Discard, false))
			if err != nil {
				return err
			}
			s := mcpadapter.NewNutricalcMCPServer(svc)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&configDir, "config-dir", ".", "Directory containing .nutricalc.yaml")

	return cmd
}
