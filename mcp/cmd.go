package mcp

import (
	"github.com/spf13/cobra"
)

// Command returns the cobra command that serves the extraction and install
// tools over MCP stdio
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve configuration extraction and install as MCP tools over stdio",
		Long: `mcp runs mcpup itself as an MCP server on stdin/stdout, exposing
get_mcp_config and install_mcp_config so that MCP clients can extract and
install server configurations without shelling out to the CLI.`,
		RunE: runMCP,
	}
}

func runMCP(cmd *cobra.Command, args []string) error {
	return NewServer().Run()
}
