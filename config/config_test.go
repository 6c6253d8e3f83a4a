package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/siftly-timepick/timepicker"
)

func newViper(t *testing.T, overrides map[string]any) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	for k, val := range overrides {
		v.Set(k, val)
	}
	return v
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(newViper(t, nil))
	require.NoError(t, err)

	assert.Equal(t, timepicker.DefaultFormat, cfg.Format)
	assert.Equal(t, []int{1, 1, 1}, cfg.Steps)
	assert.True(t, cfg.HideDisabled)
	assert.True(t, cfg.Clearable)
	assert.True(t, cfg.AllowInput)
	assert.False(t, cfg.Disabled)
	assert.Equal(t, DefaultSavePath, cfg.SavePath)
	assert.Equal(t, DefaultHistory, cfg.History)
	assert.False(t, cfg.InitialValue().IsSet())
	assert.False(t, cfg.InitialRange().IsSet())
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	tests := []struct {
		name    string
		set     map[string]any
		wantErr []string
	}{
		{"bad format", map[string]any{"format": "YYYY"}, []string{"format:"}},
		{"two steps", map[string]any{"steps": []int{1, 5}}, []string{"steps: want 3 values"}},
		{"zero step", map[string]any{"steps": []int{1, 0, 1}}, []string{"steps[1]"}},
		{"bad disable", map[string]any{"disable": "hour +"}, []string{"disable:"}},
		{"non-bool disable", map[string]any{"disable": "hour + 1"}, []string{"disable:"}},
		{"bad value", map[string]any{"value": "9:00:00"}, []string{"value:"}},
		{"short range", map[string]any{"range_value": []string{"09:00:00"}}, []string{"range_value: want start,end"}},
		{"bad range end", map[string]any{"range_value": []string{"09:00:00", "25:00:00"}}, []string{"range_value[1]"}},
		{"negative history", map[string]any{"history": -1}, []string{"history:"}},
		{
			"several",
			map[string]any{"format": "HH:mm", "value": "10:00:00", "history": -2},
			[]string{"value:", "history:"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(newViper(t, tt.set))
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestPropsFromConfig(t *testing.T) {
	cfg, err := Load(newViper(t, map[string]any{
		"format":        "HH:mm",
		"steps":         []int{2, 15, 1},
		"disable":       "hour < 9",
		"hide_disabled": false,
		"clearable":     false,
		"placeholder":   "pick",
		"value":         "10:30",
		"range_value":   []string{"09:00", "17:30"},
	}))
	require.NoError(t, err)

	p := cfg.Props().Resolve()
	assert.Equal(t, "HH:mm", p.Format)
	assert.Equal(t, timepicker.Steps{2, 15, 1}, p.Steps)
	assert.False(t, *p.HideDisabledTime)
	assert.False(t, p.Clearable)
	assert.Equal(t, "pick", p.Placeholder)
	require.NotNil(t, p.DisableTime)
	assert.True(t, p.DisableTime.Disabled(timepicker.Clock(8, 0, 0, 0)))
	assert.False(t, p.DisableTime.Disabled(timepicker.Clock(9, 0, 0, 0)))
	assert.False(t, timepicker.IsControlled(p.Value))

	picker := timepicker.New(cfg.Props())
	assert.Equal(t, "10:30", picker.Value().String())

	rp := timepicker.NewRange(cfg.RangeProps())
	assert.Equal(t, []string{"09:00", "17:30"}, rp.Value().Pair())
	assert.Equal(t, "pick", rp.Props().Placeholder)
}

func TestFlagsOverrideDefaults(t *testing.T) {
	fs := pflag.NewFlagSet("sftime", pflag.ContinueOnError)
	RegisterFlags(fs)
	v := viper.New()
	SetDefaults(v)
	require.NoError(t, BindFlags(v, fs))

	require.NoError(t, fs.Parse([]string{
		"--format", "hh:mm A",
		"--steps", "1,30,1",
		"--allow-input=false",
		"--range-value", "09:00 AM,05:00 PM",
	}))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "hh:mm A", cfg.Format)
	assert.Equal(t, []int{1, 30, 1}, cfg.Steps)
	assert.False(t, cfg.AllowInput)
	assert.Equal(t, []string{"09:00 AM", "05:00 PM"}, cfg.RangeValue)
	assert.True(t, cfg.Clearable, "unset flags keep their defaults")
}

func TestNewReadsFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sftime.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: HH:mm\nvalue: \"08:15\"\nhistory: 3\n"), 0o600))
	t.Setenv("SFTIME_HISTORY", "5")

	v, err := New(path)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "HH:mm", cfg.Format)
	assert.Equal(t, "08:15", cfg.Value)
	assert.Equal(t, 5, cfg.History, "environment beats the file")
}

func TestNewWithoutFile(t *testing.T) {
	v, err := New("")
	require.NoError(t, err)
	assert.Equal(t, timepicker.DefaultFormat, v.GetString("format"))

	_, err = New(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
