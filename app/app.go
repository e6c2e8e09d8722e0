// Package app wires Ascend's commands and flags into a urfave/cli application
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/projectascend/ascend/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the ascend app instance.
func Get() *cli.App {
	ascendApp := &cli.App{
		Name: "ascend",
		Usage: `
		Ascend turns training into a role-playing game. This client times your
		workouts, keeps a local log and syncs it to your Ascend account so every
		session earns experience.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:    "workout",
				Aliases: []string{"w"},
				Usage:   "Time a workout. Keys: s start, p pause/resume, c complete set, n add exercise, r reps/weight, e end, q quit",
				Flags: []cli.Flag{
					targetFlag,
					nameFlag,
					notesFlag,
					exerciseFlag,
					resumeFlag,
					disableNotificationFlag,
					noSoundFlag,
					sessionCmdFlag,
				},
				Action: workoutAction,
			},
			{
				Name:   "status",
				Usage:  "Show the interrupted workout, if any",
				Action: statusAction,
			},
			{
				Name:  "history",
				Usage: "List saved workouts. Defaults to the last 7 days",
				Flags: []cli.Flag{
					sinceFlag,
					untilFlag,
					remoteFlag,
					limitFlag,
					jsonFlag,
				},
				Action: historyAction,
			},
			{
				Name:  "delete",
				Usage: "Delete saved workouts in a time period",
				Flags: []cli.Flag{
					sinceFlag,
					untilFlag,
				},
				Action: deleteAction,
			},
			{
				Name:   "sync",
				Usage:  "Upload workouts that were saved while offline",
				Action: syncAction,
			},
			{
				Name:  "exercises",
				Usage: "Browse the exercise library",
				Flags: []cli.Flag{
					searchFlag,
					muscleFlag,
					equipmentFlag,
					difficultyFlag,
					exerciseIDFlag,
					facetsFlag,
					jsonFlag,
				},
				Action: exercisesAction,
			},
			{
				Name:  "stats",
				Usage: "Show your level, experience and attributes",
				Flags: []cli.Flag{
					jsonFlag,
				},
				Action: statsAction,
			},
			{
				Name:  "quests",
				Usage: "List your quests",
				Flags: []cli.Flag{
					questStatusFlag,
					jsonFlag,
				},
				Action: questsAction,
				Subcommands: []*cli.Command{
					{
						Name:      "complete",
						Usage:     "Mark a quest as completed and claim its reward",
						ArgsUsage: "<quest id>",
						Action:    completeQuestAction,
					},
				},
			},
			{
				Name:  "register",
				Usage: "Create an Ascend account",
				Flags: []cli.Flag{
					usernameFlag,
					emailFlag,
				},
				Action: registerAction,
			},
			{
				Name:  "login",
				Usage: "Sign in to your Ascend account",
				Flags: []cli.Flag{
					emailFlag,
				},
				Action: loginAction,
			},
			{
				Name:   "logout",
				Usage:  "Forget the stored access token",
				Action: logoutAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			apiFlag,
			noColorFlag,
		},
		Before: beforeAction,
		After:  afterAction,
	}

	return ascendApp
}
