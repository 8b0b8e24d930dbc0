package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/mmcdole/astrogator/internal/adapter"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or write the configuration",
		Long: `Show the effective configuration, or write it to the config file.

Examples:
  astrogator config --list                   # Print every setting
  astrogator config --write                  # Create the default config file
  astrogator config --write --force -c a.yml # Overwrite a specific file`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}

	cmd.Flags().BoolP("list", "l", false, "List all configuration")
	cmd.Flags().BoolP("write", "w", false, "Write the effective configuration to the config file")
	cmd.Flags().Bool("force", false, "Overwrite an existing config file (with --write)")

	return cmd
}

func runConfig(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	listAll, _ := cmd.Flags().GetBool("list")
	write, _ := cmd.Flags().GetBool("write")
	force, _ := cmd.Flags().GetBool("force")

	out := cmd.OutOrStdout()

	if write {
		path := configFile
		if path == "" {
			path = adapter.DefaultConfigFile()
		}

		cfg := adapter.DefaultConfig()
		if _, err := os.Stat(path); err == nil {
			if !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if cfg, err = adapter.LoadConfig(path); err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to check config file: %w", err)
		}

		if err := adapter.SaveConfig(cfg, path); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %s\n", path)
		return nil
	}

	cfg, err := adapter.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if !listAll {
		return cmd.Help()
	}

	fmt.Fprintf(out, "store.path=%s\n", cfg.Store.Path)
	fmt.Fprintf(out, "layout.column_spacing=%d\n", cfg.Layout.ColumnSpacing)
	fmt.Fprintf(out, "layout.max_inclination=%g\n", cfg.Layout.MaxInclination)
	fmt.Fprintf(out, "ui.theme=%s\n", cfg.UI.Theme)
	if cfg.UI.Transfers != "" {
		fmt.Fprintf(out, "ui.transfers=%s\n", cfg.UI.Transfers)
	}
	fmt.Fprintf(out, "logging.file=%s\n", cfg.Logging.File)
	fmt.Fprintf(out, "logging.level=%s\n", cfg.Logging.Level)
	return nil
}
