package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/snippets-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start a Model Context Protocol server exposing the snippet store.

Tools: put_snippet, get_snippet, list_catalog, search_snippets.
Resources: snippets://catalog and snippets://snippet/{keyword}.

By default the server speaks JSON-RPC over stdio. Use --port to serve
over HTTP instead; HTTP requests are rate limited by --rate and --burst.

Examples:
  # Stdio mode
  snippets mcp serve

  # HTTP mode
  snippets mcp serve --port 8080`,
	Annotations: storeAnnotation(),
	RunE:        runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Float64("rate", mcp.DefaultRateLimit.RequestsPerSecond, "HTTP requests per second (0 = unlimited)")
	mcpServeCmd.Flags().Int("burst", mcp.DefaultRateLimit.BurstSize, "HTTP request burst size")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := mcp.NewServer(&mcp.Ports{Snippets: snippetService})
	if err != nil {
		return err
	}

	if port > 0 {
		rps, err := cmd.Flags().GetFloat64("rate")
		if err != nil {
			return fmt.Errorf("getting rate flag: %w", err)
		}
		burst, err := cmd.Flags().GetInt("burst")
		if err != nil {
			return fmt.Errorf("getting burst flag: %w", err)
		}
		server.SetRateLimit(mcp.RateLimitConfig{RequestsPerSecond: rps, BurstSize: burst})

		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
