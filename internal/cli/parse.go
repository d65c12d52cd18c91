package cli

import (
	"strings"

	"github.com/MikeBiancalana/datespan/internal/dates"
	"github.com/spf13/cobra"
)

// GetParseCommand returns the command resolving typed date expressions
func GetParseCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "parse <expr>...",
		Short: "Resolve typed date expressions",
		Long: `Print the date each expression resolves to, the way the picker inputs read it.

Examples:
  datespan parse tm
  datespan parse +2w fri 2026-03-04`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseFormat(output)
			if err != nil {
				return err
			}

			for _, arg := range args {
				v, err := dates.Parse(arg, settings.DisplayFormat)
				if err != nil {
					return err
				}
				p := parsed{
					Input:       strings.TrimSpace(arg),
					Date:        v.Format(settings.DisplayFormat),
					Description: dates.Describe(v),
				}
				if err := printParsed(cmd.OutOrStdout(), format, p); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(FormatText), "output format (text, yaml)")
	return cmd
}
