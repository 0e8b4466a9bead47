package cli

import (
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/facturo/facturo/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the Facturo MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the Facturo MCP server (stdio)",
		Long:  "Start the Facturo MCP server using stdio transport. This lets AI assistants list customers and invoices, update statuses, export PDFs and edit settings.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			services, _, closeLog, err := newServices(os.Stderr)
			if err != nil {
				return err
			}
			defer closeLog()

			s := mcpadapter.NewFacturoMCPServer(services)
			return server.ServeStdio(s)
		},
	}
}
