package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil, env(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "stdin", cfg.Source())
}

func TestLoad_Env(t *testing.T) {
	cfg, err := Load(nil, env(map[string]string{
		"DRNET_PORT":       "/dev/ttyUSB0",
		"DRNET_BAUD":       "9600",
		"DRNET_POLL":       "10ms",
		"DRNET_CYCLE_HZ":   "48000000",
		"DRNET_PACE":       "true",
		"DRNET_LOG_LEVEL":  "debug",
		"DRNET_LOG_FORMAT": "json",
		"DRNET_WORKERS":    "4",
	}))
	require.NoError(t, err)

	assert.Equal(t, Config{
		Port:      "/dev/ttyUSB0",
		Baud:      9600,
		Poll:      10 * time.Millisecond,
		CycleHz:   48000000,
		Pace:      true,
		LogLevel:  "debug",
		LogFormat: "json",
		Workers:   4,
	}, cfg)
	assert.Equal(t, "serial:/dev/ttyUSB0", cfg.Source())
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	cfg, err := Load(
		[]string{"-baud", "57600", "-input", "samples.bin", "-log-level", "warn"},
		env(map[string]string{"DRNET_BAUD": "9600", "DRNET_LOG_LEVEL": "debug"}),
	)
	require.NoError(t, err)
	assert.Equal(t, 57600, cfg.Baud)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "file:samples.bin", cfg.Source())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"bad env baud", nil, map[string]string{"DRNET_BAUD": "fast"}},
		{"bad env poll", nil, map[string]string{"DRNET_POLL": "often"}},
		{"bad env pace", nil, map[string]string{"DRNET_PACE": "maybe"}},
		{"bad env workers", nil, map[string]string{"DRNET_WORKERS": "many"}},
		{"bad env cycle hz", nil, map[string]string{"DRNET_CYCLE_HZ": "-1"}},
		{"unknown flag", []string{"-turbo"}, nil},
		{"extra args", []string{"stray"}, nil},
		{"zero baud", []string{"-baud", "0"}, nil},
		{"zero poll", []string{"-poll", "0s"}, nil},
		{"negative workers", []string{"-workers", "-2"}, nil},
		{"bad format", []string{"-log-format", "xml"}, nil},
		{"both sources", []string{"-port", "COM3", "-input", "x.bin"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args, env(tt.env))
			require.Error(t, err)
		})
	}
}

func TestValidate_WrapsErrInvalid(t *testing.T) {
	cfg := Default()
	cfg.Baud = -1
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
}
