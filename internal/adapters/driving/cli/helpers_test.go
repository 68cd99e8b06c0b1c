package cli

import (
	"bytes"
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/docfind/internal/adapters/driven/storage"
	"github.com/custodia-labs/docfind/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/docfind/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docfind/internal/core/domain"
	"github.com/custodia-labs/docfind/internal/core/services"
)

// setupTestServices wires the services to the builtin corpus and an
// in-memory config store. The returned function restores package state.
func setupTestServices() func() {
	store, err := storage.NewReloadingStore(context.Background(), file.Builtin())
	if err != nil {
		panic(err)
	}
	search, err := services.NewSearchService(store, domain.DefaultSearchConfig())
	if err != nil {
		panic(err)
	}

	settingsService = services.NewSettingsService(memory.NewConfigStore(nil))
	searchService = search
	corpusService = services.NewCorpusService(store)
	corpusStore = store

	return resetState
}

// resetState clears injected services and every flag back to its default.
func resetState() {
	settingsService = nil
	searchService = nil
	corpusService = nil
	corpusStore = nil
	asyncThreshold = domain.DefaultAsyncThreshold
	resetFlags(rootCmd)
	rootCmd.SetArgs(nil)
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// testCommand returns a command carrying a background context.
func testCommand() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	return cmd
}

// execute runs the root command with args and returns its output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
