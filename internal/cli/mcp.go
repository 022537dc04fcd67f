package cli

import (
	"graphlens/internal/mcpserver"

	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the graph loader over the Model Context Protocol",
		Long:  "Starts an MCP server on stdio exposing load_graph, graph_summary, and (with a Gemini API key) ask_graph tools.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, err := mcpserver.NewServer(cmd.Context(), cfg, Version)
			if err != nil {
				return err
			}
			defer srv.Close()

			return srv.Start(cmd.Context())
		},
	}
}
