package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/MikeBiancalana/datespan/internal/dates"
	"github.com/MikeBiancalana/datespan/internal/picker"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"gopkg.in/yaml.v3"
)

type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatYAML OutputFormat = "yaml"
)

func parseFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "yaml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: text, yaml)", s)
	}
}

// result is what a picker session reports back
type result struct {
	Start   string `yaml:"start,omitempty"`
	End     string `yaml:"end,omitempty"`
	Nights  int    `yaml:"nights,omitempty"`
	Applied bool   `yaml:"applied"`
}

// resultLayout extends the date layout with a clock unless time is hidden
func resultLayout(layout string, opts picker.Options) string {
	switch {
	case opts.HideTime:
		return layout
	case opts.Is24Hour:
		return layout + " 15:04"
	default:
		return layout + " 03:04 pm"
	}
}

// newResult renders r with layout. Single results carry only a start.
func newResult(r dates.Range, applied, single bool, layout string) result {
	res := result{Start: r.Start.Format(layout), Applied: applied}
	if !single {
		res.End = r.End.Format(layout)
		res.Nights = r.Nights()
	}
	return res
}

// printResult writes res to w in format
func printResult(w io.Writer, format OutputFormat, res result) error {
	if format == FormatYAML {
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return nil
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	if !res.Applied {
		_, _ = faint.Fprintln(w, "nothing applied")
	}
	tbl.AddRow(bold.Sprint("start"), orNone(res.Start))
	if res.End != "" || res.Nights > 0 {
		tbl.AddRow(bold.Sprint("end"), orNone(res.End))
		tbl.AddRow(bold.Sprint("nights"), res.Nights)
	}
	_, err := fmt.Fprintln(w, tbl)
	return err
}

// parsed is one resolved typed date expression
type parsed struct {
	Input       string `yaml:"input"`
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
}

func printParsed(w io.Writer, format OutputFormat, p parsed) error {
	if format == FormatYAML {
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return nil
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(color.New(color.Bold).Sprint(p.Input), p.Date, color.New(color.Faint).Sprint(p.Description))
	_, err := fmt.Fprintln(w, tbl)
	return err
}

func orNone(s string) string {
	if s == "" {
		return color.New(color.Faint, color.Italic).Sprint("none")
	}
	return s
}
