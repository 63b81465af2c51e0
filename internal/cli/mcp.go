package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/careerfit/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server (stdio transport)",
	Long: `Start the MCP (Model Context Protocol) server using stdio transport.

This allows AI assistants to analyze skill lists, list career clusters and
browse the industry table.

Add to an MCP client config:

{
  "mcpServers": {
    "careerfit": {
      "command": "/path/to/careerfit",
      "args": ["mcp"]
    }
  }
}`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	// Check if MCP is enabled
	if !cfg.MCP.Enabled {
		return fmt.Errorf("MCP server is disabled in config")
	}

	// Artifacts must load before serving
	analyzer, err := newAnalyzer(cmd.Context(), cfg, log, 0)
	if err != nil {
		return fmt.Errorf("failed to load artifacts: %w", err)
	}

	server := mcp.New(analyzer, log, version)

	// Handle interrupt
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Run server
	return server.Start(ctx)
}
