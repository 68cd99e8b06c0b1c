package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docfind/internal/adapters/driving/mcp"
)

var mcpWatch bool

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can search the
documentation topics.

The server offers a search_docs tool and two resources:
  docs://documents        every topic in corpus order
  docs://documents/{id}   a single topic

By default, the server communicates over stdio using JSON-RPC.

Use --port to start an HTTP server instead. It serves:
  /mcp      streamable MCP endpoint
  /healthz  liveness probe
  /metrics  Prometheus metrics

Examples:
  # Stdio mode (default)
  docfind mcp serve

  # HTTP mode, reloading the corpus when the file changes
  docfind mcp serve --port 8080 --watch --corpus ./docs.toml`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().BoolVar(&mcpWatch, "watch", false, "reload the corpus when its file changes")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := newMCPServer(cmd)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s/mcp\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}
	return server.Run(cmd.Context())
}

// newMCPServer builds the MCP server from the loaded services.
func newMCPServer(cmd *cobra.Command) (*mcp.Server, error) {
	if err := loadCorpus(cmd.Context()); err != nil {
		return nil, err
	}
	if mcpWatch {
		if err := startWatch(cmd.Context()); err != nil {
			return nil, err
		}
	}

	return mcp.NewServer(&mcp.Ports{
		Search: searchService,
		Corpus: corpusService,
	})
}
