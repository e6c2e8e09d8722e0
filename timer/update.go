package timer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/projectascend/ascend/internal/models"
	"github.com/projectascend/ascend/internal/remote"
	"github.com/projectascend/ascend/internal/session"
	"github.com/projectascend/ascend/internal/timeutil"
)

const (
	maxProgressWidth   = 60
	defaultPushTimeout = 30 * time.Second
)

type (
	tickMsg time.Time

	savedMsg struct {
		workout *models.Workout
		err     error
		synced  bool
	}

	alertMsg struct {
		err  error
		kind string
	}
)

// listen waits for the next poller callback. At most one listener is
// outstanding at a time.
func (t *Timer) listen() tea.Cmd {
	if t.listening {
		return nil
	}

	t.listening = true

	ch, c := t.ticks, t.clock

	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}

		return tickMsg(c.Now())
	}
}

// onTick runs on the poller goroutine and must never block.
func (t *Timer) onTick() {
	select {
	case t.ticks <- struct{}{}:
	default:
	}
}

func (t *Timer) Init() tea.Cmd {
	if t.state.Phase() == session.Paused {
		t.notice = "Workout restored: press p to continue"
	}

	return nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		t.progress.Width = min(msg.Width-4, maxProgressWidth)
		t.help.Width = msg.Width

		return t, nil
	case tickMsg:
		t.listening = false
		t.now = time.Time(msg)

		cmds := []tea.Cmd{t.checkTarget()}
		if t.state.Phase() == session.Running {
			cmds = append(cmds, t.listen())
		}

		return t, tea.Batch(cmds...)
	case alertMsg:
		if msg.err != nil {
			t.logger.Warn(
				"alert failed",
				slog.String("kind", msg.kind),
				slog.Any("error", msg.err),
			)
		}

		return t, nil
	case savedMsg:
		t.saving = false
		t.stop()
		t.result = Result{
			Workout: msg.workout,
			Synced:  msg.synced,
			Err:     msg.err,
		}

		return t, tea.Quit
	}

	if t.form != nil {
		return t.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return t.handleKeyPress(msg)
	}

	return t, nil
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if t.saving || t.done {
		return t, nil
	}

	switch {
	case key.Matches(msg, t.keys.quit):
		return t, t.quit()
	case key.Matches(msg, t.keys.start):
		return t, t.start()
	case key.Matches(msg, t.keys.toggle):
		return t, t.toggle()
	case key.Matches(msg, t.keys.end):
		return t, t.end()
	case key.Matches(msg, t.keys.set):
		t.completeNextSet()
	case key.Matches(msg, t.keys.next):
		t.selectExercise(1)
	case key.Matches(msg, t.keys.prev):
		t.selectExercise(-1)
	case key.Matches(msg, t.keys.addSet):
		t.addSet()
	case key.Matches(msg, t.keys.dropSet):
		t.dropSet()
	case key.Matches(msg, t.keys.dropExercise):
		t.dropExercise()
	case key.Matches(msg, t.keys.editSet):
		return t, t.openSetForm()
	case key.Matches(msg, t.keys.addExercise):
		return t, t.openExerciseForm()
	case key.Matches(msg, t.keys.save):
		if t.state.Phase() == session.Ended {
			return t, t.openSaveForm()
		}
	}

	return t, nil
}

func (t *Timer) start() tea.Cmd {
	if err := t.state.Start(); err != nil {
		t.reject(err)
		return nil
	}

	t.notice = ""
	t.now = t.clock.Now()
	t.targetReached = false
	t.draft.EnsureName(t.state.StartedAt())
	t.poller.Start(t.onTick)
	t.persist()

	return t.listen()
}

func (t *Timer) toggle() tea.Cmd {
	if t.state.Phase() == session.Running {
		if err := t.state.Pause(); err != nil {
			t.reject(err)
			return nil
		}

		t.poller.Stop()
		t.now = t.clock.Now()
		t.persist()

		return nil
	}

	if err := t.state.Resume(); err != nil {
		t.reject(err)
		return nil
	}

	t.notice = ""
	t.now = t.clock.Now()
	t.poller.Start(t.onTick)
	t.persist()

	return t.listen()
}

func (t *Timer) end() tea.Cmd {
	if err := t.state.End(); err != nil {
		t.reject(err)
		return nil
	}

	t.poller.Stop()
	t.now = t.state.EndedAt()
	t.notice = ""

	return tea.Batch(t.endAlerts(), t.openSaveForm())
}

// completeNextSet ticks off the first unfinished set of the draft.
func (t *Timer) completeNextSet() {
	for i := range t.draft.Exercises {
		for j, set := range t.draft.Exercises[i].Sets {
			if set.Completed {
				continue
			}

			if err := t.draft.ToggleSet(i, j); err != nil {
				t.logger.Warn("toggle set", slog.Any("error", err))
			}

			return
		}
	}
}

// quit leaves the screen. An unfinished session is stored so it can be
// resumed later.
func (t *Timer) quit() tea.Cmd {
	t.stop()

	switch t.state.Phase() {
	case session.Running, session.Paused:
		t.result.Interrupted = true
		t.result.Err = t.persist()
	case session.Idle, session.Ended:
	}

	return tea.Quit
}

// stop halts the poller and releases the outstanding listener.
func (t *Timer) stop() {
	t.poller.Stop()

	if !t.done {
		close(t.ticks)
		t.done = true
	}
}

// reject surfaces a transition the session refused. The session itself is
// unchanged.
func (t *Timer) reject(err error) {
	t.notice = err.Error()

	t.logger.Warn(
		"transition rejected",
		slog.String("phase", t.state.Phase().String()),
		slog.Any("error", err),
	)
}

// persist stores the unfinished session for recovery.
func (t *Timer) persist() error {
	if t.db == nil {
		return nil
	}

	err := t.db.SaveActive(&models.Active{
		Draft:    *t.draft,
		Snapshot: t.state.Snapshot(),
		Target:   t.opts.Workout.Target,
	})
	if err != nil {
		t.logger.Error("persist session", slog.Any("error", err))
		return errPersistSession.Wrap(err)
	}

	return nil
}

func (t *Timer) checkTarget() tea.Cmd {
	target := t.opts.Workout.Target
	if t.targetReached || target <= 0 || t.elapsed() < target {
		return nil
	}

	t.targetReached = true

	settings := t.opts.Settings
	notify, ring := t.notify, t.ring
	msg := fmt.Sprintf(
		"You've trained for %s. Finish strong!",
		timeutil.FormatDuration(target),
	)

	return func() tea.Msg {
		var errs []error

		if settings.Notify {
			errs = append(errs, notify("Target reached", msg))
		}

		if settings.Sound {
			errs = append(errs, ring(1))
		}

		return alertMsg{kind: "target", err: errors.Join(errs...)}
	}
}

func (t *Timer) endAlerts() tea.Cmd {
	settings := t.opts.Settings
	notify, ring, run := t.notify, t.ring, t.exec
	msg := fmt.Sprintf(
		"%s of training done",
		timeutil.FormatDuration(t.elapsed()),
	)

	return func() tea.Msg {
		var errs []error

		if settings.Notify {
			errs = append(errs, notify("Workout complete", msg))
		}

		if settings.Sound {
			errs = append(errs, ring(2))
		}

		errs = append(errs, run(context.Background(), settings.Cmd))

		return alertMsg{kind: "end", err: errors.Join(errs...)}
	}
}

func (t *Timer) openForm(form *huh.Form, done func(aborted bool) tea.Cmd) tea.Cmd {
	if t.form != nil {
		return nil
	}

	t.form = form.WithShowHelp(true)
	t.onForm = done

	return t.form.Init()
}

func (t *Timer) openSaveForm() tea.Cmd {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Workout name").
				Value(&t.draft.Name),
			huh.NewText().
				Title("Notes").
				Value(&t.draft.Notes),
		),
	)

	return t.openForm(form, func(aborted bool) tea.Cmd {
		if aborted {
			t.draft.EnsureName(t.state.StartedAt())
		}

		return t.save()
	})
}

func (t *Timer) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := t.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.form = f
	}

	switch t.form.State {
	case huh.StateCompleted, huh.StateAborted:
		aborted := t.form.State == huh.StateAborted
		done := t.onForm
		t.form, t.onForm = nil, nil

		if done == nil {
			return t, nil
		}

		return t, done(aborted)
	case huh.StateNormal:
	}

	return t, cmd
}

// save stores the ended workout and pushes it to the backend when logged
// in. A failed push leaves the workout for 'ascend sync'.
func (t *Timer) save() tea.Cmd {
	if err := t.draft.Validate(); err != nil {
		t.notice = err.Error()
		return t.openSaveForm()
	}

	sum, err := t.state.Summary()
	if err != nil {
		return func() tea.Msg {
			return savedMsg{err: errSaveWorkout.Wrap(err)}
		}
	}

	t.saving = true

	w := models.NewWorkout(t.draft, sum)
	db, backend, logger := t.db, t.backend, t.logger
	timeout := t.pushTimeout()

	return func() tea.Msg {
		if err := db.SaveWorkout(w); err != nil {
			return savedMsg{err: errSaveWorkout.Wrap(err)}
		}

		if err := db.DeleteActive(); err != nil {
			logger.Warn("clear interrupted workout", slog.Any("error", err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := remote.Push(ctx, db, backend, w)
		if err != nil && !errors.Is(err, remote.ErrNotLoggedIn) {
			logger.Warn("workout sync failed", slog.Any("error", err))
		}

		return savedMsg{workout: w, synced: err == nil}
	}
}

func (t *Timer) pushTimeout() time.Duration {
	d := t.opts.API.Timeout * time.Duration(t.opts.API.RetryMax+1)
	if d <= 0 {
		return defaultPushTimeout
	}

	return d
}
