package app

import (
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/projectascend/ascend/internal/api"
	"github.com/projectascend/ascend/internal/models"
	"github.com/projectascend/ascend/internal/remote"
	"github.com/projectascend/ascend/report"
	"github.com/projectascend/ascend/store"
)

var questStatuses = []string{
	models.QuestActive,
	models.QuestCompleted,
	models.QuestFailed,
	models.QuestPaused,
}

// questsAction lists the user's quests. Completed quests are recorded
// locally so that estimated stats include their rewards.
func questsAction(ctx *cli.Context) error {
	status := strings.ToLower(strings.TrimSpace(ctx.String("status")))
	if status != "" && !slices.Contains(questStatuses, status) {
		return errQuestStatus.Fmt(status)
	}

	_, db, client, err := setup(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	if !client.LoggedIn() {
		return remote.ErrNotLoggedIn
	}

	quests, err := client.Quests(ctx.Context, status)
	if err != nil {
		return clearOnUnauthorized(db, err)
	}

	recordCompleted(db, quests)

	if ctx.Bool("json") {
		return printJSON(quests)
	}

	return printQuestsTable(os.Stdout, quests)
}

// completeQuestAction completes the quest whose ID is the first argument.
func completeQuestAction(ctx *cli.Context) error {
	id, err := parseQuestID(ctx.Args().First())
	if err != nil {
		return err
	}

	_, db, client, err := setup(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	if !client.LoggedIn() {
		return remote.ErrNotLoggedIn
	}

	q, err := client.CompleteQuest(ctx.Context, id)
	if err != nil {
		return clearOnUnauthorized(db, err)
	}

	recordCompleted(db, []models.Quest{*q})

	report.Success("Quest %q completed: %s", q.Title, formatXP(q.XPReward))

	return nil
}

func parseQuestID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, errQuestID.Fmt(arg)
	}

	return id, nil
}

// recordCompleted stores completed quests. Failures only cost the local
// estimate, so they are logged and skipped.
func recordCompleted(db store.DB, quests []models.Quest) {
	for i := range quests {
		if !quests[i].Completed() {
			continue
		}

		if err := db.SaveQuest(&quests[i]); err != nil {
			slog.Warn(
				"record completed quest",
				slog.Int("id", quests[i].ID),
				slog.Any("error", err),
			)
		}
	}
}

func notEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errEmptyField.Fmt(field)
		}

		return nil
	}
}

func validEmail(s string) error {
	if !strings.Contains(s, "@") {
		return errInvalidEmail
	}

	return nil
}

func options(values []string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(values))

	for _, v := range values {
		label := strings.ReplaceAll(v, "_", " ")
		opts = append(opts, huh.NewOption(label, v))
	}

	return opts
}

// registerAction creates an account and stores its access token.
func registerAction(ctx *cli.Context) error {
	_, db, client, err := setup(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	reg := api.Registration{
		Username:      ctx.String("username"),
		Email:         ctx.String("email"),
		PrimaryGoal:   api.Goals[0],
		ActivityLevel: "moderately_active",
	}

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&reg.Username).
				Validate(notEmpty("username")),
			huh.NewInput().
				Title("Email").
				Value(&reg.Email).
				Validate(validEmail),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&reg.Password).
				Validate(notEmpty("password")),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Primary goal").
				Options(options(api.Goals)...).
				Value(&reg.PrimaryGoal),
			huh.NewSelect[string]().
				Title("Activity level").
				Options(options(api.ActivityLevels)...).
				Value(&reg.ActivityLevel),
		),
	).Run()
	if err != nil {
		return err
	}

	reg.Username = strings.TrimSpace(reg.Username)
	reg.Email = strings.TrimSpace(reg.Email)

	spinner, _ := pterm.DefaultSpinner.Start("Creating account...")

	resp, err := client.Register(ctx.Context, reg)

	_ = spinner.Stop()

	if err != nil {
		return err
	}

	if err := db.SaveToken(resp.AccessToken); err != nil {
		return err
	}

	report.Success("Welcome, %s! You are logged in", resp.User.Username)

	return nil
}
