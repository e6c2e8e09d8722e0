package config

import (
	"net/url"
	"slices"
	"strings"
	"time"
)

var (
	minTarget = 1 * time.Minute
	maxTarget = 6 * time.Hour

	minTimeout = 1 * time.Second
	maxTimeout = 2 * time.Minute

	maxDefaultRest = 10 * time.Minute

	maxRetries = 10

	logLevels = []string{"debug", "info", "warn", "error"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateAPI(); err != nil {
		return err
	}

	if err := c.validateWorkout(); err != nil {
		return err
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return errInvalidLogLevel.Fmt(c.Log.Level)
	}

	return nil
}

func (c *Config) validateAPI() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") ||
		u.Host == "" {
		return errInvalidBaseURL.Fmt(c.API.BaseURL)
	}

	if c.API.Timeout < minTimeout || c.API.Timeout > maxTimeout {
		return errInvalidDuration.Fmt("api timeout", minTimeout, maxTimeout)
	}

	if c.API.RetryMax < 0 || c.API.RetryMax > maxRetries {
		return errInvalidRetryMax.Fmt(0, maxRetries, c.API.RetryMax)
	}

	return nil
}

func (c *Config) validateWorkout() error {
	if c.Workout.Target < minTarget || c.Workout.Target > maxTarget {
		return errInvalidDuration.Fmt("workout target", minTarget, maxTarget)
	}

	if c.Workout.DefaultRest < 0 || c.Workout.DefaultRest > maxDefaultRest {
		return errInvalidDuration.Fmt(
			"default rest",
			time.Duration(0),
			maxDefaultRest,
		)
	}

	return nil
}
