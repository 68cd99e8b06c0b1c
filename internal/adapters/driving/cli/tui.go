package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/docfind/internal/adapters/driving/tui"
	"github.com/custodia-labs/docfind/internal/core/ports/driven"
	"github.com/custodia-labs/docfind/internal/core/ports/driving"
	"github.com/custodia-labs/docfind/internal/core/services"
	"github.com/custodia-labs/docfind/internal/logger"
)

var (
	tuiLogFile   string
	tuiStartPath string
	tuiWatch     bool
)

// errNotTerminal is returned when tui runs without an interactive terminal.
var errNotTerminal = errors.New("tui needs an interactive terminal; use \"docfind search\" in scripts")

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive documentation browser",
	Long: `Launch the interactive documentation browser with its search palette.

Controls:
  ctrl+k, /  - Open the search palette
  ↑/↓        - Move through results (ctrl+p/ctrl+n also work)
  Enter      - Open the selected topic
  Esc        - Close the palette
  j/k        - Scroll the page
  q          - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiLogFile, "log-file", "", "write verbose logs to this file while the UI runs")
	tuiCmd.Flags().StringVar(&tuiStartPath, "path", "/", "page shown at startup")
	tuiCmd.Flags().BoolVar(&tuiWatch, "watch", false, "reload the corpus when its file changes")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	// The alt screen owns stderr while the UI runs.
	if tuiLogFile != "" {
		restore, err := logger.ToFile(tuiLogFile)
		if err != nil {
			return err
		}
		defer restore() //nolint:errcheck
	} else {
		logger.SetVerbose(false)
	}

	app, err := newTUIApp(cmd)
	if err != nil {
		return err
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// newTUIApp builds the TUI from the loaded services.
func newTUIApp(cmd *cobra.Command) (*tui.App, error) {
	if err := loadCorpus(cmd.Context()); err != nil {
		return nil, err
	}
	if tuiWatch {
		if err := startWatch(cmd.Context()); err != nil {
			return nil, err
		}
	}

	search := searchService
	ports := tui.NewPorts(search, corpusService, func(p driven.Presenter) driving.SessionController {
		return services.NewSession(search, p)
	})
	ports.AsyncThreshold = asyncThreshold
	ports.StartPath = tuiStartPath

	app, err := tui.NewApp(ports)
	if err != nil {
		return nil, fmt.Errorf("failed to create TUI: %w", err)
	}
	return app.WithContext(cmd.Context()), nil
}
