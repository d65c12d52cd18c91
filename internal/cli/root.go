package cli

import (
	"fmt"

	"github.com/MikeBiancalana/datespan/internal/config"
	"github.com/MikeBiancalana/datespan/internal/logger"
	"github.com/spf13/cobra"
)

var (
	configDir string
	settings  = config.Defaults()
)

// RootCmd is the root command for the CLI
var RootCmd = &cobra.Command{
	Use:   "datespan",
	Short: "datespan - terminal date range picker",
	Long: `An interactive date and time range picker for the terminal.

Picks a range (or a single date) with the keyboard or mouse and prints the
applied result, for use in scripts and shell pipelines.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadSettings()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: range picker
		return runPick(cmd, pickFlags{output: string(FormatText)})
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory holding config.yaml (default ~/.datespan)")

	// Add subcommands
	RootCmd.AddCommand(GetPickCommand())
	RootCmd.AddCommand(GetSingleCommand())
	RootCmd.AddCommand(GetConfigureCommand())
	RootCmd.AddCommand(GetParseCommand())
}

// loadSettings reads config.yaml and the DATESPAN_* environment
func loadSettings() error {
	dir := configDir
	if dir != "" {
		expanded, err := config.ExpandPath(dir)
		if err != nil {
			return fmt.Errorf("invalid config directory: %w", err)
		}
		dir = expanded
	}

	s, err := config.Load(dir)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	settings = s
	logger.Debug("cli: settings loaded", "dir", dir, "months", s.Months, "portal", s.Portal)
	return nil
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}
