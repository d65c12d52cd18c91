package cli

import (
	"fmt"
	"path/filepath"

	"github.com/MikeBiancalana/datespan/internal/config"
	"github.com/MikeBiancalana/datespan/internal/dates"
	"github.com/MikeBiancalana/datespan/internal/logger"
	"github.com/MikeBiancalana/datespan/internal/picker"
	"github.com/MikeBiancalana/datespan/internal/sync"
	"github.com/MikeBiancalana/datespan/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type pickFlags struct {
	start  string
	end    string
	seed   string
	watch  bool
	output string
}

// GetPickCommand returns the range picker command
func GetPickCommand() *cobra.Command {
	var f pickFlags

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a date range",
		Long: `Open the range picker and print the applied range.

Dates accept the display format, YYYY-MM-DD, t, tm, weekday names, +3d and +2w.
A seed file is YAML with start and end keys; with --watch, edits to it are
synced into the open picker.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.start, "start", "", "initial start date")
	cmd.Flags().StringVar(&f.end, "end", "", "initial end date")
	cmd.Flags().StringVar(&f.seed, "seed", "", "YAML file supplying the initial range")
	cmd.Flags().BoolVar(&f.watch, "watch", false, "sync the picker when the seed file changes")
	cmd.Flags().StringVarP(&f.output, "output", "o", string(FormatText), "output format (text, yaml)")
	return cmd
}

func runPick(cmd *cobra.Command, f pickFlags) error {
	format, err := parseFormat(f.output)
	if err != nil {
		return err
	}
	if f.watch && f.seed == "" {
		return fmt.Errorf("--watch requires --seed")
	}

	layout := settings.DisplayFormat
	opts := pickerOptions(settings, picker.ModeRange)

	var watcher *sync.Watcher
	if f.seed != "" {
		path, err := config.ExpandPath(f.seed)
		if err != nil {
			return fmt.Errorf("invalid seed path: %w", err)
		}
		r, err := sync.ReadSeed(path, layout)
		if err != nil {
			return err
		}
		opts.Start, opts.End = r.Start, r.End

		if f.watch {
			watcher, err = sync.NewWatcher(path, layout)
			if err != nil {
				return err
			}
		}
	}

	if opts.Start, err = flagDate(f.start, layout, opts.Start); err != nil {
		return fmt.Errorf("invalid --start: %w", err)
	}
	if opts.End, err = flagDate(f.end, layout, opts.End); err != nil {
		return fmt.Errorf("invalid --end: %w", err)
	}

	m, err := runProgram(tui.Options{
		Picker:        opts,
		DisplayLayout: layout,
		Months:        settings.Months,
		Watcher:       watcher,
	})
	if err != nil {
		return err
	}

	r, applied := m.Result()
	return printResult(cmd.OutOrStdout(), format, newResult(r, applied, false, resultLayout(layout, opts)))
}

// flagDate parses a date flag, keeping fallback when the flag is unset
func flagDate(raw, layout string, fallback dates.Value) (dates.Value, error) {
	if raw == "" {
		return fallback, nil
	}
	return dates.Parse(raw, layout)
}

// runProgram runs the picker full screen until the user quits
func runProgram(opts tui.Options) (*tui.Model, error) {
	if err := logger.InitializeWithConfig(tuiLoggerConfig()); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	model := tui.NewModel(opts)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		return nil, fmt.Errorf("picker failed: %w", err)
	}
	return model, nil
}

// tuiLoggerConfig moves logging to a file while the screen belongs to the picker
func tuiLoggerConfig() logger.Config {
	cfg := logger.ConfigFromEnv()
	cfg.TUIMode = true
	if cfg.File == "" {
		if dir, err := config.LogDir(); err == nil {
			cfg.File = filepath.Join(dir, "datespan.log")
		}
	}
	return cfg
}
