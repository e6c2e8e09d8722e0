package config

import (
	"errors"
	"net/url"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
 █████╗ ███████╗ ██████╗███████╗███╗   ██╗██████╗
██╔══██╗██╔════╝██╔════╝██╔════╝████╗  ██║██╔══██╗
███████║███████╗██║     █████╗  ██╔██╗ ██║██║  ██║
██╔══██║╚════██║██║     ██╔══╝  ██║╚██╗██║██║  ██║
██║  ██║███████║╚██████╗███████╗██║ ╚████║██████╔╝
╚═╝  ╚═╝╚══════╝ ╚═════╝╚══════╝╚═╝  ╚═══╝╚═════╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	BaseURL       string
	TargetMinutes int
}

// WithPromptConfig returns an Option that asks for the essential settings
// when no config file exists yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return errPrompt.Wrap(err)
		}

		return applyPromptOptions(c, opts)
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		BaseURL: "http://localhost:8000",
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure Ascend for the first time.
Enter your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'ascend edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Ascend server URL").
				Value(&opts.BaseURL).
				Validate(validateURL),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Target workout length").
				Options(
					huh.NewOption("30 minutes", 30),
					huh.NewOption("45 minutes", 45).Selected(true),
					huh.NewOption("60 minutes", 60),
					huh.NewOption("75 minutes", 75),
					huh.NewOption("90 minutes", 90),
				).
				Value(&opts.TargetMinutes),
		),
	).WithInput(Stdin).WithOutput(Stdout)

	err := form.Run()
	if err != nil {
		return opts, err
	}

	return opts, nil
}

func validateURL(s string) error {
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") ||
		u.Host == "" {
		return errInvalidBaseURL.Fmt(s)
	}

	return nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) error {
	c.API.BaseURL = opts.BaseURL
	c.Workout.Target = time.Duration(opts.TargetMinutes) * time.Minute

	return nil
}
