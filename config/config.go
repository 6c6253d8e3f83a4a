// Package config loads sftime's settings with Viper from, in rising
// precedence, built-in defaults, a YAML file, SFTIME_* environment variables
// and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/andareed/siftly-timepick/timepicker"
)

const (
	EnvPrefix       = "SFTIME"
	DefaultSavePath = "selection.yaml"
	DefaultHistory  = 8
)

type Config struct {
	Format       string   `mapstructure:"format"`
	Steps        []int    `mapstructure:"steps"`
	Disable      string   `mapstructure:"disable"`
	HideDisabled bool     `mapstructure:"hide_disabled"`
	Clearable    bool     `mapstructure:"clearable"`
	AllowInput   bool     `mapstructure:"allow_input"`
	Disabled     bool     `mapstructure:"disabled"`
	Placeholder  string   `mapstructure:"placeholder"`
	Value        string   `mapstructure:"value"`
	RangeValue   []string `mapstructure:"range_value"`
	SavePath     string   `mapstructure:"save_path"`
	Debug        string   `mapstructure:"debug"`
	History      int      `mapstructure:"history"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("format", timepicker.DefaultFormat)
	v.SetDefault("steps", []int{1, 1, 1})
	v.SetDefault("hide_disabled", true)
	v.SetDefault("clearable", true)
	v.SetDefault("allow_input", true)
	v.SetDefault("save_path", DefaultSavePath)
	v.SetDefault("history", DefaultHistory)
}

// flagKeys maps command-line flag names onto config keys.
var flagKeys = map[string]string{
	"format":        "format",
	"steps":         "steps",
	"disable":       "disable",
	"hide-disabled": "hide_disabled",
	"clearable":     "clearable",
	"allow-input":   "allow_input",
	"disabled":      "disabled",
	"placeholder":   "placeholder",
	"value":         "value",
	"range-value":   "range_value",
	"save-path":     "save_path",
	"debug":         "debug",
	"history":       "history",
}

// RegisterFlags adds the config flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("format", timepicker.DefaultFormat, "time format (HH H hh h mm m ss s SSS A a)")
	fs.IntSlice("steps", []int{1, 1, 1}, "hour,minute,second steps offered by the panel")
	fs.String("disable", "", `CEL expression over hour, minute, second marking disabled times, e.g. "hour < 9"`)
	fs.Bool("hide-disabled", true, "hide disabled times instead of striking them through")
	fs.Bool("clearable", true, "allow clearing the value with ctrl+x")
	fs.Bool("allow-input", true, "allow typing a time into the single picker")
	fs.Bool("disabled", false, "disable both pickers")
	fs.String("placeholder", "", "text shown while nothing is selected")
	fs.String("value", "", "initial single time value")
	fs.StringSlice("range-value", nil, "initial range as start,end")
	fs.String("save-path", DefaultSavePath, "where the save dialog writes by default")
	fs.String("debug", "", "write debug logs to file")
	fs.Int("history", DefaultHistory, "number of commits kept in the history pane")
}

// BindFlags binds every registered flag in fs onto v.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, cfgKey := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(cfgKey, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// New returns a Viper instance with defaults, env overrides and, when path is
// not empty, the given config file.
func New(path string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	if path == "" {
		v.SetConfigName("sftime")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
		return v, nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return v, nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []error
	if _, err := timepicker.CompileFormat(c.Format); err != nil {
		errs = append(errs, fmt.Errorf("format: %w", err))
	}
	if len(c.Steps) != 3 {
		errs = append(errs, fmt.Errorf("steps: want 3 values, got %d", len(c.Steps)))
	} else {
		for i, s := range c.Steps {
			if s <= 0 {
				errs = append(errs, fmt.Errorf("steps[%d]: must be positive, got %d", i, s))
			}
		}
	}
	if c.Disable != "" {
		if _, err := timepicker.CompileDisableExpr(c.Disable); err != nil {
			errs = append(errs, fmt.Errorf("disable: %w", err))
		}
	}
	if c.Value != "" && !timepicker.ValidateInputValue(c.Value, c.Format) {
		errs = append(errs, fmt.Errorf("value: %q does not match format %q", c.Value, c.Format))
	}
	switch len(c.RangeValue) {
	case 0:
	case 2:
		for i, v := range c.RangeValue {
			if !timepicker.ValidateInputValue(v, c.Format) {
				errs = append(errs, fmt.Errorf("range_value[%d]: %q does not match format %q", i, v, c.Format))
			}
		}
	default:
		errs = append(errs, fmt.Errorf("range_value: want start,end, got %d values", len(c.RangeValue)))
	}
	if c.History < 0 {
		errs = append(errs, fmt.Errorf("history: must not be negative, got %d", c.History))
	}
	return errors.Join(errs...)
}

// PickerSteps converts the configured steps.
func (c *Config) PickerSteps() timepicker.Steps {
	var s timepicker.Steps
	copy(s[:], c.Steps)
	return s
}

func (c *Config) disableTime() timepicker.DisableTime {
	if c.Disable == "" {
		return nil
	}
	d, err := timepicker.CompileDisableExpr(c.Disable)
	if err != nil {
		return nil
	}
	return d
}

// Props builds uncontrolled single-picker props seeded with the configured
// value; callbacks are left for the caller.
func (c *Config) Props() timepicker.Props {
	return timepicker.Props{
		Value:            timepicker.Uncontrolled[timepicker.TimeValue]{Default: c.InitialValue()},
		Format:           c.Format,
		Steps:            c.PickerSteps(),
		DisableTime:      c.disableTime(),
		HideDisabledTime: timepicker.Bool(c.HideDisabled),
		Clearable:        c.Clearable,
		Disabled:         c.Disabled,
		AllowInput:       c.AllowInput,
		Placeholder:      c.Placeholder,
	}
}

// RangeProps builds range-picker props; callbacks are left for the caller.
func (c *Config) RangeProps() timepicker.RangeProps {
	return timepicker.RangeProps{
		Value:            timepicker.Uncontrolled[timepicker.RangeValue]{Default: c.InitialRange()},
		Format:           c.Format,
		Steps:            c.PickerSteps(),
		DisableTime:      c.disableTime(),
		HideDisabledTime: timepicker.Bool(c.HideDisabled),
		Clearable:        c.Clearable,
		Disabled:         c.Disabled,
		Placeholder:      c.Placeholder,
	}
}

// InitialValue is the configured single value, if any.
func (c *Config) InitialValue() timepicker.TimeValue {
	if c.Value == "" {
		return timepicker.NoTime()
	}
	return timepicker.TimeOf(timepicker.FormatInputValue(c.Value, c.Format))
}

// InitialRange is the configured range, if any.
func (c *Config) InitialRange() timepicker.RangeValue {
	if len(c.RangeValue) != 2 {
		return timepicker.NoRange()
	}
	return timepicker.RangeOf(c.RangeValue[0], c.RangeValue[1])
}
