package app

import "github.com/urfave/cli/v2"

var (
	apiFlag = &cli.StringFlag{
		Name:  "api",
		Usage: "Base URL of the Ascend server (overrides api.base_url)",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	targetFlag = &cli.StringFlag{
		Name:    "target",
		Aliases: []string{"t"},
		Usage:   "Planned workout length, e.g. 45m or 1h (default: 45m)",
	}

	nameFlag = &cli.StringFlag{
		Name:    "name",
		Aliases: []string{"n"},
		Usage:   "Name of the workout. Defaults to 'Workout - <date>'",
	}

	notesFlag = &cli.StringFlag{
		Name:  "notes",
		Usage: "Notes saved with the workout",
	}

	exerciseFlag = &cli.StringSliceFlag{
		Name:    "exercise",
		Aliases: []string{"x"},
		Usage:   "Add an exercise to the workout. Repeat for several exercises",
	}

	resumeFlag = &cli.BoolFlag{
		Name:    "resume",
		Aliases: []string{"r"},
		Usage:   "Continue the interrupted workout",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears when a workout ends",
	}

	noSoundFlag = &cli.BoolFlag{
		Name:  "no-sound",
		Usage: "Do not ring a bell when the target is reached or the workout ends",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:  "cmd",
		Usage: "Execute an arbitrary command after each workout",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Start of the period, e.g. '2025-03-01' or '2 weeks ago'",
	}

	untilFlag = &cli.StringFlag{
		Name:  "until",
		Usage: "End of the period (default: now)",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print JSON instead of a table",
	}

	searchFlag = &cli.StringFlag{
		Name:    "search",
		Aliases: []string{"s"},
		Usage:   "Match exercise names and descriptions",
	}

	muscleFlag = &cli.StringSliceFlag{
		Name:    "muscle",
		Aliases: []string{"m"},
		Usage:   "Only show exercises working this muscle. Repeat to match any of several",
	}

	equipmentFlag = &cli.StringFlag{
		Name:    "equipment",
		Aliases: []string{"e"},
		Usage:   "Only show exercises using this equipment",
	}

	difficultyFlag = &cli.StringFlag{
		Name:  "difficulty",
		Usage: "beginner, intermediate or advanced",
	}

	emailFlag = &cli.StringFlag{
		Name:  "email",
		Usage: "Account email address",
	}

	remoteFlag = &cli.BoolFlag{
		Name:  "remote",
		Usage: "List the workouts stored in your Ascend account instead",
	}

	limitFlag = &cli.IntFlag{
		Name:  "limit",
		Usage: "Maximum number of remote workouts to list (0 for all)",
		Value: 20,
	}

	exerciseIDFlag = &cli.IntFlag{
		Name:  "id",
		Usage: "Show the details of a single exercise",
	}

	facetsFlag = &cli.BoolFlag{
		Name:  "facets",
		Usage: "List the equipment and difficulty values to filter by",
	}

	questStatusFlag = &cli.StringFlag{
		Name:  "status",
		Usage: "active, completed, failed or paused (default: all)",
	}

	usernameFlag = &cli.StringFlag{
		Name:  "username",
		Usage: "Account username",
	}
)
