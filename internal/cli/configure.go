package cli

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MikeBiancalana/datespan/internal/config"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// configureValues holds the form fields before they are validated
type configureValues struct {
	anchor        string
	openDirection string
	portal        string
	months        string
	minimumNights string
	displayFormat string
	is24Hour      bool
	hideTime      bool
	keepOpen      bool
	allowPast     bool
}

func newConfigureValues(s config.Settings) *configureValues {
	return &configureValues{
		anchor:        s.Anchor,
		openDirection: s.OpenDirection,
		portal:        s.Portal,
		months:        strconv.Itoa(s.Months),
		minimumNights: strconv.Itoa(s.MinimumNights),
		displayFormat: s.DisplayFormat,
		is24Hour:      s.Is24Hour,
		hideTime:      s.HideTime,
		keepOpen:      s.KeepOpenOnDateSelect,
		allowPast:     s.AllowPast,
	}
}

// apply copies the form values onto s
func (v *configureValues) apply(s config.Settings) (config.Settings, error) {
	months, err := strconv.Atoi(strings.TrimSpace(v.months))
	if err != nil {
		return s, fmt.Errorf("months must be a number: %w", err)
	}
	nights, err := strconv.Atoi(strings.TrimSpace(v.minimumNights))
	if err != nil {
		return s, fmt.Errorf("minimum nights must be a number: %w", err)
	}

	s.Anchor = v.anchor
	s.OpenDirection = v.openDirection
	s.Portal = v.portal
	s.Months = months
	s.MinimumNights = nights
	s.DisplayFormat = strings.TrimSpace(v.displayFormat)
	s.Is24Hour = v.is24Hour
	s.HideTime = v.hideTime
	s.KeepOpenOnDateSelect = v.keepOpen
	s.AllowPast = v.allowPast
	return s, s.Validate()
}

func validateNumber(lo, hi int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		if n < lo || n > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}

func (v *configureValues) form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Anchor the popover to the").
				Options(huh.NewOptions("right", "left")...).
				Value(&v.anchor),
			huh.NewSelect[string]().
				Title("Open direction").
				Options(huh.NewOptions("down", "up")...).
				Value(&v.openDirection),
			huh.NewSelect[string]().
				Title("Popover display").
				Options(
					huh.NewOption("Inline", config.PortalNone),
					huh.NewOption("Centered portal", config.PortalCentered),
					huh.NewOption("Full screen", config.PortalFullScreen),
				).
				Value(&v.portal),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Months shown (1-3)").
				Value(&v.months).
				Validate(validateNumber(1, 3)),
			huh.NewInput().
				Title("Minimum nights").
				Value(&v.minimumNights).
				Validate(validateNumber(0, 365)),
			huh.NewInput().
				Title("Display date format (Go layout)").
				Value(&v.displayFormat).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("format is required")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Use a 24-hour clock?").Value(&v.is24Hour),
			huh.NewConfirm().Title("Hide time editing?").Value(&v.hideTime),
			huh.NewConfirm().Title("Keep the picker open after completing a range?").Value(&v.keepOpen),
			huh.NewConfirm().Title("Allow past dates?").Value(&v.allowPast),
		),
	)
}

// configPath is where configure writes: --config-dir, or the data directory
func configPath() (string, error) {
	if configDir != "" {
		dir, err := config.ExpandPath(configDir)
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, config.ConfigFile), nil
	}
	return config.ConfigPath()
}

// GetConfigureCommand returns the interactive settings command
func GetConfigureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Edit picker settings interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values := newConfigureValues(settings)
			if err := values.form().Run(); err != nil {
				return fmt.Errorf("form cancelled: %w", err)
			}

			next, err := values.apply(settings)
			if err != nil {
				return err
			}

			path, err := configPath()
			if err != nil {
				return fmt.Errorf("failed to get config path: %w", err)
			}
			if err := next.Save(path); err != nil {
				return err
			}
			settings = next

			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
			return nil
		},
	}
}
