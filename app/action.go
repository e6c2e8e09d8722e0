package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/projectascend/ascend/internal/api"
	"github.com/projectascend/ascend/internal/config"
	"github.com/projectascend/ascend/internal/pathutil"
	"github.com/projectascend/ascend/internal/timeutil"
	"github.com/projectascend/ascend/internal/ui"
	"github.com/projectascend/ascend/report"
	"github.com/projectascend/ascend/store"
	"github.com/projectascend/ascend/timer"
)

const (
	envNoColor       = "NO_COLOR"
	envAscendNoColor = "ASCEND_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig reads the config file (prompting on first run) and applies the
// command-line overrides. It also installs the file logger.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	configPath := pathutil.ConfigFilePath()

	cfg, err := config.New(
		config.WithPromptConfig(configPath),
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	slog.SetDefault(newLogger(cfg.Log.SlogLevel()))

	return cfg, nil
}

func newLogger(level slog.Level) *slog.Logger {
	w := &lumberjack.Logger{
		Filename:   pathutil.LogFilePath(),
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// setup loads the config, opens the database and builds an API client
// carrying the stored token.
func setup(ctx *cli.Context) (*config.Config, *store.Client, *api.Client, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return nil, nil, nil, err
	}

	token, err := db.Token()
	if err != nil {
		_ = db.Close()
		return nil, nil, nil, err
	}

	client, err := api.New(
		cfg.API.BaseURL,
		api.WithToken(token),
		api.WithLogger(slog.Default()),
		api.WithRetryMax(cfg.API.RetryMax),
		api.WithTimeout(cfg.API.Timeout),
	)
	if err != nil {
		_ = db.Close()
		return nil, nil, nil, err
	}

	return cfg, db, client, nil
}

// workoutAction opens the workout screen for a new or interrupted workout.
func workoutAction(ctx *cli.Context) error {
	cfg, db, client, err := setup(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	opts := []timer.Option{
		timer.WithLogger(slog.Default()),
		timer.WithBackend(client),
	}

	var t *timer.Timer

	if cfg.CLI.Resume {
		active, err := db.Active()
		if err != nil {
			return err
		}

		t, err = timer.Resume(db, cfg, active, opts...)
		if err != nil {
			return err
		}
	} else {
		if _, err := db.Active(); err == nil {
			report.Warn(
				"Starting over discards the interrupted workout. Quit and run 'ascend workout --resume' to keep it",
			)
		}

		t = timer.New(db, cfg, opts...)
	}

	p := tea.NewProgram(t)

	if _, err := p.Run(); err != nil {
		return err
	}

	res := t.Result()
	if res.Err != nil {
		return res.Err
	}

	if res.Workout != nil {
		report.WorkoutSaved(res.Workout.Name, res.Synced)
	}

	if res.Interrupted {
		report.Info("Workout paused: continue with 'ascend workout --resume'")
	}

	return nil
}

// statusAction prints the interrupted workout.
func statusAction(ctx *cli.Context) error {
	if _, err := loadConfig(ctx); err != nil {
		return err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	active, err := db.Active()
	if errors.Is(err, store.ErrNoActiveSession) {
		report.Info("No interrupted workout")
		return nil
	}

	if err != nil {
		return err
	}

	snap := active.Snapshot

	var fraction float64
	if active.Target > 0 {
		fraction = float64(snap.AccumulatedMs) / float64(active.Target.Milliseconds())
	}

	pterm.Printfln(
		"%s %s  %s  %s",
		ui.Phase(snap.Phase),
		ui.Highlight(active.Draft.Name),
		timeutil.FormatElapsed(snap.AccumulatedMs),
		ui.Bar(fraction, 20),
	)
	pterm.Printfln(
		"started %s, stopped %s",
		snap.StartedAt.Local().Format("Jan 02, 2006 03:04 PM"),
		snap.SavedAt.Local().Format("Jan 02, 2006 03:04 PM"),
	)

	return nil
}

// editConfigAction handles the edit-config command which opens the ascend
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	if _, exists := os.LookupEnv(envAscendNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return fmt.Errorf("unable to locate data directories: %w", err)
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.DebugContext(ctx.Context, "exiting ascend")

	return nil
}
