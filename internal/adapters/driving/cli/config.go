package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docfind/internal/core/services"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage search settings",
	Long: `View and change the settings docfind searches with: field weights, the
match threshold, the minimum query length, the result limit and the corpus file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a single setting. Keys use the dotted form shown by "config show",
for example:

  docfind config set search.threshold 0.3
  docfind config set search.weights.keywords 0.25
  docfind config set corpus.path ~/docs/corpus.toml`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if err := loadSettings(); err != nil {
		return err
	}
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Printf("Settings (%s)\n\n", settingsService.Path())
	for _, key := range services.SettingKeys() {
		value, err := services.SettingValue(settings, key)
		if err != nil {
			return err
		}
		if value == "" {
			value = "(builtin)"
		}
		cmd.Printf("  %-26s %s\n", key, value)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if err := loadSettings(); err != nil {
		return err
	}
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("%s = %s\n", key, value)
	return nil
}
