package cli

import (
	"fmt"

	"github.com/MikeBiancalana/datespan/internal/picker"
	"github.com/MikeBiancalana/datespan/internal/tui"
	"github.com/spf13/cobra"
)

// GetSingleCommand returns the single date and time picker command
func GetSingleCommand() *cobra.Command {
	var (
		date   string
		is24   bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "single",
		Short: "Pick a single date and time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(output)
			if err != nil {
				return err
			}

			layout := settings.DisplayFormat
			opts := pickerOptions(settings, picker.ModeSingle)
			if cmd.Flags().Changed("24h") {
				opts.Is24Hour = is24
			}
			if opts.Start, err = flagDate(date, layout, opts.Start); err != nil {
				return fmt.Errorf("invalid --date: %w", err)
			}

			m, err := runProgram(tui.Options{
				Picker:        opts,
				DisplayLayout: layout,
				Months:        settings.Months,
			})
			if err != nil {
				return err
			}

			r, applied := m.Result()
			return printResult(cmd.OutOrStdout(), format, newResult(r, applied, true, resultLayout(layout, opts)))
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "initial date")
	cmd.Flags().BoolVar(&is24, "24h", false, "use a 24-hour clock")
	cmd.Flags().StringVarP(&output, "output", "o", string(FormatText), "output format (text, yaml)")
	return cmd
}
