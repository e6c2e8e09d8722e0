// Package timer runs the interactive workout screen: a stopwatch that can be
// paused, resumed and ended, and the save flow that follows it
package timer

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/projectascend/ascend/internal/clock"
	"github.com/projectascend/ascend/internal/config"
	"github.com/projectascend/ascend/internal/models"
	"github.com/projectascend/ascend/internal/poller"
	"github.com/projectascend/ascend/internal/remote"
	"github.com/projectascend/ascend/internal/session"
	"github.com/projectascend/ascend/internal/workout"
	"github.com/projectascend/ascend/store"
)

// Result describes how the workout screen was left.
type Result struct {
	Workout *models.Workout
	Err     error
	// Interrupted is set when the session was stored for a later --resume
	Interrupted bool
	Synced      bool
}

// Timer is the bubbletea model of the workout screen.
type Timer struct {
	db      store.DB
	backend remote.Backend
	clock   clock.Clock
	logger  *slog.Logger
	opts    *config.Config

	state  *session.State
	draft  *workout.Draft
	poller *poller.Poller
	// ticks carries poller callbacks into the bubbletea event loop
	ticks     chan struct{}
	listening bool

	progress progress.Model
	help     help.Model
	keys     keymap
	style    style
	form     *huh.Form
	// onForm runs once the open form completes or is aborted
	onForm func(aborted bool) tea.Cmd

	selected    int
	edit        setEdit
	newExercise string

	notify func(title, msg string) error
	ring   func(rings int) error
	exec   func(ctx context.Context, cmd string) error

	now           time.Time
	result        Result
	notice        string
	targetReached bool
	saving        bool
	done          bool
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock replaces the system clock.
func WithClock(c clock.Clock) Option {
	return func(t *Timer) {
		t.clock = c
	}
}

// WithLogger sets the logger for rejected transitions and background errors.
func WithLogger(l *slog.Logger) Option {
	return func(t *Timer) {
		t.logger = l
	}
}

// WithBackend enables pushing the saved workout to the API.
func WithBackend(b remote.Backend) Option {
	return func(t *Timer) {
		t.backend = b
	}
}

// WithPollInterval changes how often the display refreshes while running.
func WithPollInterval(d time.Duration) Option {
	return func(t *Timer) {
		t.poller = poller.New(d)
	}
}

// New returns a Timer for a fresh workout.
func New(db store.DB, cfg *config.Config, opts ...Option) *Timer {
	t := &Timer{
		db:     db,
		opts:   cfg,
		clock:  clock.System,
		logger: slog.New(slog.DiscardHandler),
		poller: poller.New(poller.DefaultInterval),
		ticks:  make(chan struct{}, 1),
		keys:   defaultKeymap,
		style:  newStyle(cfg.Display.DarkTheme),
		help:   help.New(),
		progress: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(40),
		),
		notify: desktopNotify,
		ring:   ringBell,
		exec:   runSessionCmd,
	}

	for _, opt := range opts {
		opt(t)
	}

	t.state = session.New(t.clock)
	t.draft = workout.NewDraft(cfg.CLI.Name, cfg.CLI.Notes, cfg.Workout.DefaultRest)

	for _, name := range cfg.CLI.Exercises {
		t.draft.AddExercise(0, name)
	}
	t.now = t.clock.Now()

	return t
}

// Resume returns a Timer that continues an interrupted workout. The
// session comes back paused.
func Resume(
	db store.DB,
	cfg *config.Config,
	active *models.Active,
	opts ...Option,
) (*Timer, error) {
	t := New(db, cfg, opts...)

	state, err := session.Restore(t.clock, active.Snapshot)
	if err != nil {
		return nil, err
	}

	t.state = state

	draft := active.Draft
	if cfg.CLI.Name != "" {
		draft.Name = cfg.CLI.Name
	}

	if cfg.CLI.Notes != "" {
		draft.Notes = cfg.CLI.Notes
	}

	t.draft = &draft

	t.targetReached = t.elapsed() >= t.opts.Workout.Target

	return t, nil
}

// Result reports the outcome once the program has exited.
func (t *Timer) Result() Result {
	return t.result
}

// Phase returns the phase of the underlying session.
func (t *Timer) Phase() session.Phase {
	return t.state.Phase()
}

func (t *Timer) elapsed() time.Duration {
	return t.state.Elapsed(t.now)
}
