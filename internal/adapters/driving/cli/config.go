package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/snippets-cli/internal/core/ports/driving"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and change configuration",
	Long: `View and change the database and logging configuration.

Settings live in config.toml inside the configuration directory.
Any key can be overridden by an environment variable: database.host
becomes SNIPPETS_DATABASE_HOST.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value.

Keys:
  database.backend   postgres, sqlite or memory
  database.dbname    PostgreSQL database name
  database.user      PostgreSQL user
  database.host      PostgreSQL host
  database.port      PostgreSQL port
  database.password  PostgreSQL password
  database.path      SQLite data directory
  log.file           append log output to this file
  log.level          debug, info, warn or error`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

// configView is the structured form of config show.
type configView struct {
	Path     string                 `json:"path" yaml:"path"`
	Settings []driving.SettingEntry `json:"settings" yaml:"settings"`
}

func requireSettings() (driving.SettingsService, error) {
	if settingsService == nil {
		return nil, errors.New("settings service not configured")
	}
	return settingsService, nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	svc, err := requireSettings()
	if err != nil {
		return err
	}

	entries, err := svc.Entries()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}

	if structured() {
		return writeStructured(cmd.OutOrStdout(), configView{Path: svc.Path(), Settings: entries})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config file: %s\n\n", svc.Path())
	width := 0
	for _, e := range entries {
		width = max(width, len(e.Key))
	}
	for _, e := range entries {
		value := e.Value
		if value == "" {
			value = "(not set)"
		}
		fmt.Fprintf(out, "  %-*s  %s\n", width, e.Key, value)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	svc, err := requireSettings()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	if err := svc.Set(key, value); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}

	if structured() {
		return writeStructured(cmd.OutOrStdout(), driving.SettingEntry{Key: key, Value: value})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", key)
	return nil
}
