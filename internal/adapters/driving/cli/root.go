// Package cli provides the docfind command line interface.
// It is a driving adapter: commands translate flags and arguments into calls
// on the core services and print the results.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docfind/internal/logger"
)

// version is set by Execute from the build.
var version = "dev"

// Persistent flags.
var (
	verbose    bool
	configDir  string
	noConfig   bool
	corpusFlag string
)

var rootCmd = &cobra.Command{
	Use:   "docfind",
	Short: "Fuzzy search over documentation topics",
	Long: `docfind finds documentation topics from free text.

Queries tolerate typos, partial words and out-of-order terms. Each topic is
scored on its title, description, keywords and section, and the best matches
are shown first.

Run "docfind tui" for the interactive browser with a ctrl+k search palette,
"docfind search <query>" for one-shot results, or "docfind mcp serve" to
expose the corpus to AI assistants.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.docfind)")
	flags.BoolVar(&noConfig, "no-config", false, "use default settings and never touch the configuration directory")
	flags.StringVar(&corpusFlag, "corpus", "", "corpus file to load (.toml, .yaml, .yml, .db, .sqlite); overrides corpus.path")
}

// Execute runs the root command with ctx and the given build version.
func Execute(ctx context.Context, buildVersion string) error {
	if buildVersion != "" {
		version = buildVersion
	}
	return rootCmd.ExecuteContext(ctx)
}
