package app

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/projectascend/ascend/internal/api"
	"github.com/projectascend/ascend/internal/exercise"
	"github.com/projectascend/ascend/internal/pathutil"
	"github.com/projectascend/ascend/internal/player"
	"github.com/projectascend/ascend/report"
	"github.com/projectascend/ascend/store"
)

// exercisesAction fetches the exercise library and filters it locally.
// With --id it shows a single exercise instead.
func exercisesAction(ctx *cli.Context) error {
	_, db, client, err := setup(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	if id := ctx.Int("id"); id > 0 {
		ex, err := client.Exercise(ctx.Context, id)
		if err != nil {
			return clearOnUnauthorized(db, err)
		}

		if ctx.Bool("json") {
			return printJSON(ex)
		}

		printExercise(os.Stdout, ex)

		return nil
	}

	filter := exercise.Filter{
		Search:     strings.TrimSpace(ctx.String("search")),
		Muscles:    ctx.StringSlice("muscle"),
		Equipment:  ctx.String("equipment"),
		Difficulty: ctx.String("difficulty"),
	}

	list, err := client.Exercises(ctx.Context, api.ExerciseQuery{
		Search: filter.Search,
	})
	if err != nil {
		return clearOnUnauthorized(db, err)
	}

	matches := filter.Apply(list)

	if ctx.Bool("facets") {
		printFacets(os.Stdout, matches)
		return nil
	}

	if ctx.Bool("json") {
		return printJSON(matches)
	}

	return printExercisesTable(os.Stdout, matches)
}

// statsAction prints the player's progression. Without an account the
// figures are estimated from the local workout and quest log.
func statsAction(ctx *cli.Context) error {
	_, db, client, err := setup(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	var (
		stats     *player.Stats
		username  string
		estimated bool
	)

	if client.LoggedIn() {
		username, stats, err = remoteStats(ctx.Context, client)
		if err != nil {
			slog.WarnContext(
				ctx.Context,
				"fetch player stats",
				slog.Any("error", clearOnUnauthorized(db, err)),
			)
		}
	}

	if stats == nil {
		stats, err = localStats(db)
		if err != nil {
			return err
		}

		estimated = true
	}

	if ctx.Bool("json") {
		return printJSON(stats)
	}

	return printStats(os.Stdout, stats, username, estimated)
}

// remoteStats returns the signed-in user's name and stats. The stats come
// with the profile when the backend includes them.
func remoteStats(ctx context.Context, client *api.Client) (string, *player.Stats, error) {
	u, err := client.Me(ctx)
	if err != nil {
		return "", nil, err
	}

	if u.PlayerStats != nil {
		return u.Username, u.PlayerStats, nil
	}

	stats, err := client.PlayerStats(ctx)
	if err != nil {
		return u.Username, nil, err
	}

	return u.Username, stats, nil
}

// localStats estimates progression from every workout in the local log and
// the rewards of quests known to be completed.
func localStats(db store.DB) (*player.Stats, error) {
	workouts, err := db.Workouts(time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}

	quests, err := db.CompletedQuests()
	if err != nil {
		return nil, err
	}

	awards := make([]player.XP, 0, len(workouts)+len(quests))
	for i := range workouts {
		awards = append(awards, player.WorkoutXP(workouts[i].DurationMinutes))
	}

	for i := range quests {
		awards = append(awards, quests[i].XPReward)
	}

	stats := player.Compute(awards...)

	return &stats, nil
}

// loginAction signs in and stores the access token.
func loginAction(ctx *cli.Context) error {
	_, db, client, err := setup(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	email := ctx.String("email")

	var password string

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Value(&email).
				Validate(validEmail),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&password),
		),
	).Run()
	if err != nil {
		return err
	}

	spinner, _ := pterm.DefaultSpinner.Start("Signing in...")

	resp, err := client.Login(ctx.Context, strings.TrimSpace(email), password)

	_ = spinner.Stop()

	if err != nil {
		return err
	}

	if err := db.SaveToken(resp.AccessToken); err != nil {
		return err
	}

	report.Success("Logged in as %s", resp.User.Username)

	return nil
}

// logoutAction removes the stored token.
func logoutAction(ctx *cli.Context) error {
	if _, err := loadConfig(ctx); err != nil {
		return err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	if err := db.ClearToken(); err != nil {
		return err
	}

	report.Success("Logged out")

	return nil
}

// clearOnUnauthorized forgets a token the backend no longer accepts.
func clearOnUnauthorized(db store.DB, err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		if clearErr := db.ClearToken(); clearErr != nil {
			return errors.Join(err, clearErr)
		}
	}

	return err
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	pterm.Println(string(b))

	return nil
}
