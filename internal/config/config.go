// Package config assembles the host emulator settings from command-line
// flags and DRNET_* environment variables. Flags win over the environment,
// the environment over defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"
)

// Defaults.
const (
	DefaultBaud      = 115200
	DefaultPoll      = 100 * time.Millisecond
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// ErrInvalid marks a configuration that fails validation.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the emulator settings.
type Config struct {
	// Port is a serial device name. Mutually exclusive with Input.
	Port string
	Baud int
	// Input is a file of raw sample bytes, "-" for stdin.
	Input string
	Poll  time.Duration
	// CycleHz overrides the cycle counter rate; 0 probes the host CPU.
	CycleHz uint64
	// Pace delivers file input at the wire rate.
	Pace      bool
	LogLevel  string
	LogFormat string
	// Workers sets the kernel worker count; 0 or 1 runs sequentially.
	Workers int
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Baud:      DefaultBaud,
		Poll:      DefaultPoll,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Load parses args (without the program name) on top of the environment
// read through getenv.
func Load(args []string, getenv func(string) string) (Config, error) {
	cfg := Default()
	if err := cfg.applyEnv(getenv); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("drnet", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Port, "port", cfg.Port, "serial port to read samples from")
	fs.IntVar(&cfg.Baud, "baud", cfg.Baud, "serial baud rate")
	fs.StringVar(&cfg.Input, "input", cfg.Input, "file of raw sample bytes (- for stdin)")
	fs.DurationVar(&cfg.Poll, "poll", cfg.Poll, "consumer poll interval")
	fs.Uint64Var(&cfg.CycleHz, "cycle-hz", cfg.CycleHz, "cycle counter rate (0 = probe CPU)")
	fs.BoolVar(&cfg.Pace, "pace", cfg.Pace, "deliver file input at the baud rate")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (console, json)")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "kernel workers (0 = sequential)")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("failed to parse flags: %w", err)
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("%w: unexpected arguments %v", ErrInvalid, fs.Args())
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if getenv == nil {
		return nil
	}
	if v := getenv("DRNET_PORT"); v != "" {
		c.Port = v
	}
	if v := getenv("DRNET_INPUT"); v != "" {
		c.Input = v
	}
	if v := getenv("DRNET_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv("DRNET_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	if v := getenv("DRNET_BAUD"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: DRNET_BAUD=%q: %w", ErrInvalid, v, err)
		}
		c.Baud = n
	}
	if v := getenv("DRNET_POLL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: DRNET_POLL=%q: %w", ErrInvalid, v, err)
		}
		c.Poll = d
	}
	if v := getenv("DRNET_CYCLE_HZ"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: DRNET_CYCLE_HZ=%q: %w", ErrInvalid, v, err)
		}
		c.CycleHz = n
	}
	if v := getenv("DRNET_PACE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: DRNET_PACE=%q: %w", ErrInvalid, v, err)
		}
		c.Pace = b
	}
	if v := getenv("DRNET_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: DRNET_WORKERS=%q: %w", ErrInvalid, v, err)
		}
		c.Workers = n
	}
	return nil
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	switch {
	case c.Port != "" && c.Input != "":
		return fmt.Errorf("%w: -port and -input are mutually exclusive", ErrInvalid)
	case c.Baud <= 0:
		return fmt.Errorf("%w: baud must be positive, got %d", ErrInvalid, c.Baud)
	case c.Poll <= 0:
		return fmt.Errorf("%w: poll must be positive, got %s", ErrInvalid, c.Poll)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalid, c.Workers)
	case c.LogFormat != "console" && c.LogFormat != "json":
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, c.LogFormat)
	}
	return nil
}

// Source describes where samples come from, for logging.
func (c Config) Source() string {
	switch {
	case c.Port != "":
		return "serial:" + c.Port
	case c.Input == "" || c.Input == "-":
		return "stdin"
	default:
		return "file:" + c.Input
	}
}
