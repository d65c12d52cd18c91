package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Portal modes
const (
	PortalNone       = "none"
	PortalCentered   = "portal"
	PortalFullScreen = "fullscreen"
)

// Touch detection modes
const (
	TouchAuto = "auto"
	TouchOn   = "on"
	TouchOff  = "off"
)

// Settings are the persisted picker preferences
type Settings struct {
	Anchor               string `yaml:"anchor" mapstructure:"anchor"`
	OpenDirection        string `yaml:"open_direction" mapstructure:"open_direction"`
	HorizontalMargin     int    `yaml:"horizontal_margin" mapstructure:"horizontal_margin"`
	VerticalSpacing      int    `yaml:"vertical_spacing" mapstructure:"vertical_spacing"`
	Portal               string `yaml:"portal" mapstructure:"portal"`
	AppendToBody         bool   `yaml:"append_to_body" mapstructure:"append_to_body"`
	DisableScroll        bool   `yaml:"disable_scroll" mapstructure:"disable_scroll"`
	MinimumNights        int    `yaml:"minimum_nights" mapstructure:"minimum_nights"`
	KeepOpenOnDateSelect bool   `yaml:"keep_open_on_date_select" mapstructure:"keep_open_on_date_select"`
	ReadOnly             bool   `yaml:"read_only" mapstructure:"read_only"`
	KeepFocusOnInput     bool   `yaml:"keep_focus_on_input" mapstructure:"keep_focus_on_input"`
	Is24Hour             bool   `yaml:"is_24_hour" mapstructure:"is_24_hour"`
	DisableMinutes       bool   `yaml:"disable_minutes" mapstructure:"disable_minutes"`
	HideTime             bool   `yaml:"hide_time" mapstructure:"hide_time"`
	Months               int    `yaml:"months" mapstructure:"months"`
	DisplayFormat        string `yaml:"display_format" mapstructure:"display_format"`
	Touch                string `yaml:"touch" mapstructure:"touch"`
	AllowPast            bool   `yaml:"allow_past" mapstructure:"allow_past"`
}

// Defaults returns the out-of-the-box settings
func Defaults() Settings {
	return Settings{
		Anchor:               "right",
		OpenDirection:        "down",
		VerticalSpacing:      1,
		Portal:               PortalNone,
		MinimumNights:        1,
		KeepOpenOnDateSelect: true,
		Months:               2,
		DisplayFormat:        "01/02/2006",
		Touch:                TouchAuto,
	}
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("anchor", d.Anchor)
	v.SetDefault("open_direction", d.OpenDirection)
	v.SetDefault("horizontal_margin", d.HorizontalMargin)
	v.SetDefault("vertical_spacing", d.VerticalSpacing)
	v.SetDefault("portal", d.Portal)
	v.SetDefault("append_to_body", d.AppendToBody)
	v.SetDefault("disable_scroll", d.DisableScroll)
	v.SetDefault("minimum_nights", d.MinimumNights)
	v.SetDefault("keep_open_on_date_select", d.KeepOpenOnDateSelect)
	v.SetDefault("read_only", d.ReadOnly)
	v.SetDefault("keep_focus_on_input", d.KeepFocusOnInput)
	v.SetDefault("is_24_hour", d.Is24Hour)
	v.SetDefault("disable_minutes", d.DisableMinutes)
	v.SetDefault("hide_time", d.HideTime)
	v.SetDefault("months", d.Months)
	v.SetDefault("display_format", d.DisplayFormat)
	v.SetDefault("touch", d.Touch)
	v.SetDefault("allow_past", d.AllowPast)
}

// Load reads config.yaml from dir, or from DataDir when dir is empty.
// A missing file yields the defaults. DATESPAN_* environment variables
// override file values, e.g. DATESPAN_IS_24_HOUR=true.
func Load(dir string) (Settings, error) {
	if dir == "" {
		d, err := DataDir()
		if err != nil {
			return Settings{}, fmt.Errorf("failed to get data directory: %w", err)
		}
		dir = d
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("DATESPAN")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects settings the picker cannot honour
func (s Settings) Validate() error {
	switch s.Anchor {
	case "left", "right":
	default:
		return fmt.Errorf("invalid anchor %q: want left or right", s.Anchor)
	}
	switch s.OpenDirection {
	case "up", "down":
	default:
		return fmt.Errorf("invalid open_direction %q: want up or down", s.OpenDirection)
	}
	switch s.Portal {
	case PortalNone, PortalCentered, PortalFullScreen:
	default:
		return fmt.Errorf("invalid portal %q", s.Portal)
	}
	switch s.Touch {
	case TouchAuto, TouchOn, TouchOff:
	default:
		return fmt.Errorf("invalid touch %q", s.Touch)
	}
	if s.MinimumNights < 0 {
		return fmt.Errorf("minimum_nights must not be negative, got %d", s.MinimumNights)
	}
	if s.HorizontalMargin < 0 || s.VerticalSpacing < 0 {
		return errors.New("horizontal_margin and vertical_spacing must not be negative")
	}
	if s.Months < 1 || s.Months > 3 {
		return fmt.Errorf("months must be between 1 and 3, got %d", s.Months)
	}
	return nil
}

// Save writes the settings as YAML to path, creating parent directories
func (s Settings) Save(path string) error {
	if err := s.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// IsTouchDevice resolves the touch setting. In auto mode a Termux session
// counts as touch.
func (s Settings) IsTouchDevice() bool {
	switch s.Touch {
	case TouchOn:
		return true
	case TouchOff:
		return false
	default:
		return os.Getenv("TERMUX_VERSION") != ""
	}
}
