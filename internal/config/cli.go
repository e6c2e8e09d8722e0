package config

import (
	"strings"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Target        string
	Name          string
	Notes         string
	SessionCmd    string
	API           string
	Exercises     []string
	DisableNotify bool
	NoSound       bool
	Resume        bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Target:        ctx.String("target"),
			Name:          ctx.String("name"),
			Notes:         ctx.String("notes"),
			SessionCmd:    ctx.String("cmd"),
			API:           ctx.String("api"),
			Exercises:     ctx.StringSlice("exercise"),
			DisableNotify: ctx.Bool("disable-notification"),
			NoSound:       ctx.Bool("no-sound"),
			Resume:        ctx.Bool("resume"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Target != "" {
		dur, err := parseDuration(opts.Target)
		if err != nil {
			return errInvalidCLIDuration.Fmt("target", opts.Target).Wrap(err)
		}

		c.Workout.Target = dur
	}

	if opts.API != "" {
		c.API.BaseURL = strings.TrimRight(opts.API, "/")
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.DisableNotify {
		c.Settings.Notify = false
	}

	if opts.NoSound {
		c.Settings.Sound = false
	}

	c.CLI.Name = strings.TrimSpace(opts.Name)
	c.CLI.Notes = strings.TrimSpace(opts.Notes)
	c.CLI.Resume = opts.Resume

	for _, e := range opts.Exercises {
		if e = strings.TrimSpace(e); e != "" {
			c.CLI.Exercises = append(c.CLI.Exercises, e)
		}
	}

	return nil
}
