package cli

import (
	mcpadapter "github.com/abdidvp/inventory/internal/adapters/inbound/mcp"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the inventory MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(opts))
	return cmd
}

func newMCPServeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the inventory MCP server (stdio)",
		Long:  "Start an MCP server on stdin/stdout holding an inventory seeded from .inventory.yaml. The inventory lives as long as the process.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := openService(cmd, opts)
			if err != nil {
				return err
			}
			return server.ServeStdio(mcpadapter.NewInventoryMCPServer(svc, version))
		},
	}
}
