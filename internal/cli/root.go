// Package cli wires configuration, storage and the TUI behind the
// astrogator command.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/astrogator/internal/adapter"
	"github.com/mmcdole/astrogator/internal/domain"
	"github.com/mmcdole/astrogator/internal/fixture"
	"github.com/mmcdole/astrogator/internal/store"
	"github.com/mmcdole/astrogator/internal/tui"
	"github.com/mmcdole/astrogator/internal/tui/components"
	"github.com/mmcdole/astrogator/internal/tui/styles"
	"github.com/mmcdole/astrogator/internal/view"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

// NewRootCmd builds the astrogator command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "astrogator",
		Short: "Transfer window planner for the terminal",
		Long: `astrogator shows the transfer options from the current origin in a
movable popup. Click a column header (or tab to it and press enter) to sort;
clicking the active column again reverses the order. The sort order and the
popup position are remembered between runs.

Examples:
  astrogator                          # Built-in demo model
  astrogator --transfers plan.toml    # Model from a TOML file
  astrogator --sort dv --desc         # Start sorted by Δv, largest first
  astrogator --plain --filter du      # Print the table and exit
  astrogator --reset                  # Start from the default order and position`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		RunE:          runRoot,
	}

	cmd.PersistentFlags().StringP("config", "c", "", "Config file (default ~/.config/astrogator/config.yaml)")
	cmd.Flags().StringP("transfers", "t", "", "TOML transfer model (default built-in demo)")
	cmd.Flags().StringP("sort", "s", "", "Sort column: name, position, time or deltav (fuzzy)")
	cmd.Flags().Bool("desc", false, "Sort descending (with --sort)")
	cmd.Flags().StringP("filter", "f", "", "Only show destinations matching this query")
	cmd.Flags().Bool("plain", false, "Print the table instead of starting the TUI")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().Bool("reset", false, "Forget the saved sort order and popup position")

	cmd.AddCommand(newConfigCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("Error: "+err.Error()))
		return err
	}
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")
	transfersFile, _ := cmd.Flags().GetString("transfers")
	sortName, _ := cmd.Flags().GetString("sort")
	descending, _ := cmd.Flags().GetBool("desc")
	filter, _ := cmd.Flags().GetString("filter")
	plain, _ := cmd.Flags().GetBool("plain")
	noColor, _ := cmd.Flags().GetBool("no-color")
	reset, _ := cmd.Flags().GetBool("reset")

	// Load configuration
	cfg, err := adapter.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := adapter.SetupLogger(&cfg.Logging, Version)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting astrogator")

	if err := styles.ApplyTheme(cfg.UI.Theme); err != nil {
		return err
	}
	if noColor {
		styles.SetNoColor()
	}

	st, err := store.NewSettingsStore(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("failed to open settings: %w", err)
	}
	defer st.Close()

	if reset {
		if err := st.Reset(); err != nil {
			return fmt.Errorf("failed to reset settings: %w", err)
		}
		logger.Info("settings reset")
	}

	if transfersFile == "" {
		transfersFile = cfg.UI.Transfers
	}
	source, err := fixture.Load(transfersFile, cfg.Layout.MaxInclination)
	if err != nil {
		return err
	}

	settings := view.NewSettings(st, logger)
	if sortName != "" {
		key, err := ResolveSortKey(sortName)
		if err != nil {
			return err
		}
		settings.SetSortState(domain.SortState{Key: key, Descending: descending})
		logger.Info("sort set from flag", "key", key.String(), "descending", descending)
	}

	out := cmd.OutOrStdout()
	if plain || !isTerminal(out) {
		return printPlain(out, source, settings, cfg.Layout.ColumnSpacing, filter, logger)
	}

	model := tui.NewModel(source, settings, cfg.Layout.ColumnSpacing, logger)
	model.FilterModal.SetValue(filter)

	// Run the TUI
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// printPlain writes one build of the table to out
func printPlain(out io.Writer, source domain.ModelSource, settings *view.Settings, spacing int, filter string, logger *slog.Logger) error {
	builder := view.NewBuilder(settings, components.NewTransferRow(styles.NormalSkin), spacing, logger)
	layout := builder.Build(source.Model(), filter)

	if _, err := io.WriteString(out, tui.RenderPlain(layout)); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
