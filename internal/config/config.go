// Package config loads Ascend's settings from the config file, the
// first-run prompt and command-line flags
package config

import (
	"io"
	"log/slog"
	"os"
	"time"
)

type (
	// Config holds all configuration settings
	Config struct {
		API      APIConfig
		Workout  WorkoutConfig
		Settings SettingsConfig
		Display  DisplayConfig
		Log      LogConfig
		CLI      CLIConfig
	}

	// APIConfig holds the backend connection settings
	APIConfig struct {
		BaseURL  string
		Timeout  time.Duration
		RetryMax int
	}

	// WorkoutConfig holds workout defaults
	WorkoutConfig struct {
		// Target is the planned workout length shown as a progress bar
		Target      time.Duration
		DefaultRest time.Duration
	}

	// SettingsConfig holds behaviour toggles
	SettingsConfig struct {
		Cmd            string
		Notify         bool
		Sound          bool
		TwentyFourHour bool
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme bool
	}

	// LogConfig holds logging settings
	LogConfig struct {
		Level string
	}

	// CLIConfig holds values that only come from the command line
	CLIConfig struct {
		Name      string
		Notes     string
		Exercises []string
		Resume    bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a Config, applies each option in order and validates the
// result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// SlogLevel converts the configured log level for use with log/slog.
func (l LogConfig) SlogLevel() slog.Level {
	var level slog.Level

	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}

	return level
}
