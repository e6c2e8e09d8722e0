package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

const (
	keyAPIBaseURL         = "api.base_url"
	keyAPITimeout         = "api.timeout"
	keyAPIRetryMax        = "api.retry_max"
	keyWorkoutTarget      = "workout.target"
	keyWorkoutDefaultRest = "workout.default_rest"
	keyNotify             = "settings.notify"
	keySound              = "settings.sound"
	keySessionCmd         = "settings.cmd"
	keyTwentyFourHour     = "settings.24hr_clock"
	keyDarkTheme          = "display.dark_theme"
	keyLogLevel           = "log.level"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. A missing file is created with default values.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper registers defaults. Values already present on c (from the
// first-run prompt) replace the defaults so they are written to disk.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyAPIBaseURL, "http://localhost:8000")
	v.SetDefault(keyAPITimeout, "10s")
	v.SetDefault(keyAPIRetryMax, 3)
	v.SetDefault(keyWorkoutTarget, "45m")
	v.SetDefault(keyWorkoutDefaultRest, "60s")
	v.SetDefault(keyNotify, true)
	v.SetDefault(keySound, true)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyLogLevel, "info")

	if c.API.BaseURL != "" {
		v.SetDefault(keyAPIBaseURL, c.API.BaseURL)
	}

	if c.Workout.Target != 0 {
		v.SetDefault(keyWorkoutTarget, formatMinutes(c.Workout.Target))
	}
}

// loadViperConfig copies values from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	var err error

	c.API.BaseURL = v.GetString(keyAPIBaseURL)
	c.API.RetryMax = v.GetInt(keyAPIRetryMax)

	c.API.Timeout, err = parseDuration(v.GetString(keyAPITimeout))
	if err != nil {
		return fmt.Errorf("%s: %w", keyAPITimeout, err)
	}

	c.Workout.Target, err = parseDuration(v.GetString(keyWorkoutTarget))
	if err != nil {
		return fmt.Errorf("%s: %w", keyWorkoutTarget, err)
	}

	c.Workout.DefaultRest, err = parseDuration(
		v.GetString(keyWorkoutDefaultRest),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", keyWorkoutDefaultRest, err)
	}

	c.Settings.Notify = v.GetBool(keyNotify)
	c.Settings.Sound = v.GetBool(keySound)
	c.Settings.Cmd = v.GetString(keySessionCmd)
	c.Settings.TwentyFourHour = v.GetBool(keyTwentyFourHour)
	c.Display.DarkTheme = v.GetBool(keyDarkTheme)
	c.Log.Level = v.GetString(keyLogLevel)

	return nil
}

// parseDuration accepts Go duration strings and bare numbers of minutes.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	mins, err := time.ParseDuration(s + "m")
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %s", s)
	}

	return mins, nil
}

func formatMinutes(d time.Duration) string {
	return fmt.Sprintf("%dm", int(d.Minutes()))
}
