package app

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/projectascend/ascend/internal/config"
	"github.com/projectascend/ascend/internal/models"
	"github.com/projectascend/ascend/internal/pathutil"
	"github.com/projectascend/ascend/internal/remote"
	"github.com/projectascend/ascend/report"
	"github.com/projectascend/ascend/store"
)

// workoutsHelper returns the workouts in the period selected by --since and
// --until.
func workoutsHelper(ctx *cli.Context) ([]models.Workout, *store.Client, error) {
	if _, err := loadConfig(ctx); err != nil {
		return nil, nil, err
	}

	filter, err := config.Filter(ctx)
	if err != nil {
		return nil, nil, err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return nil, nil, err
	}

	workouts, err := db.Workouts(filter.StartTime, filter.EndTime)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return workouts, db, nil
}

// historyAction prints the workouts of a time period. With --remote it
// lists the workouts stored in the user's account.
func historyAction(ctx *cli.Context) error {
	if ctx.Bool("remote") {
		return remoteHistory(ctx)
	}

	workouts, db, err := workoutsHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	if ctx.Bool("json") {
		return printJSON(workouts)
	}

	return listWorkouts(workouts)
}

func remoteHistory(ctx *cli.Context) error {
	_, db, client, err := setup(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	if !client.LoggedIn() {
		return remote.ErrNotLoggedIn
	}

	workouts, err := client.Workouts(ctx.Context, ctx.Int("limit"))
	if err != nil {
		return clearOnUnauthorized(db, err)
	}

	if ctx.Bool("json") {
		return printJSON(workouts)
	}

	return printRemoteWorkoutsTable(os.Stdout, workouts)
}

// deleteAction deletes the workouts of a time period after confirmation.
func deleteAction(ctx *cli.Context) error {
	workouts, db, err := workoutsHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	if len(workouts) == 0 {
		report.Info(noWorkoutsMsg)
		return nil
	}

	if err := printWorkoutsTable(os.Stdout, workouts); err != nil {
		return err
	}

	var confirmed bool

	err = huh.NewConfirm().
		Title("Delete the workouts above permanently?").
		Affirmative("Delete").
		Negative("Cancel").
		Value(&confirmed).
		Run()
	if err != nil {
		return err
	}

	if !confirmed {
		return nil
	}

	if err := db.DeleteWorkouts(workouts); err != nil {
		return err
	}

	report.Success("Deleted %d workout(s)", len(workouts))

	return nil
}

// syncAction uploads the workouts saved while offline.
func syncAction(ctx *cli.Context) error {
	_, db, client, err := setup(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	unsynced, err := db.Unsynced()
	if err != nil {
		return err
	}

	if len(unsynced) == 0 {
		report.Info("Everything is up to date")
		return nil
	}

	spinner, _ := pterm.DefaultSpinner.Start("Syncing workouts...")

	pushed, err := remote.PushAll(ctx.Context, db, client, unsynced, slog.Default())

	_ = spinner.Stop()

	if pushed > 0 {
		report.Success("Synced %d of %d workout(s)", pushed, len(unsynced))
	}

	return err
}
