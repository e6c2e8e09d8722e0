package timer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/projectascend/ascend/internal/session"
	"github.com/projectascend/ascend/internal/timeutil"
)

func (t *Timer) clockFormat() string {
	if t.opts.Settings.TwentyFourHour {
		return "15:04"
	}

	return "03:04 PM"
}

// targetFraction is the share of the target covered so far, capped at 1.
func (t *Timer) targetFraction() float64 {
	target := t.opts.Workout.Target
	if target <= 0 {
		return 0
	}

	return min(float64(t.elapsed())/float64(target), 1)
}

func (t *Timer) headerView() string {
	phase := t.state.Phase()

	return t.style.phase(phase).Render(strings.ToUpper(phase.String())) +
		t.style.title.Render(t.draft.Name)
}

func (t *Timer) detailView() string {
	var parts []string

	if started := t.state.StartedAt(); !started.IsZero() {
		parts = append(parts, "started "+started.Format(t.clockFormat()))
	}

	parts = append(
		parts,
		"target "+timeutil.FormatDuration(t.opts.Workout.Target),
	)

	if done, total := t.draft.Progress(); total > 0 {
		parts = append(parts, fmt.Sprintf("%d/%d sets", done, total))
	}

	return t.style.hint.Render(strings.Join(parts, " · "))
}

// exerciseView lists the exercises of the draft with their sets. A set
// reads reps×weight and is ticked once completed.
func (t *Timer) exerciseView() string {
	if len(t.draft.Exercises) == 0 {
		return ""
	}

	var lines []string

	for i := range t.draft.Exercises {
		ex := t.draft.Exercises[i]

		cursor := "  "
		if i == t.selected {
			cursor = "> "
		}

		sets := make([]string, 0, len(ex.Sets))

		for _, set := range ex.Sets {
			s := fmt.Sprintf("%d×%s", set.Reps, strconv.FormatFloat(set.WeightKg, 'f', -1, 64))
			if set.Completed {
				s += "✓"
			}

			sets = append(sets, s)
		}

		lines = append(lines, cursor+ex.Name+"  "+t.style.hint.Render(strings.Join(sets, " ")))
	}

	return strings.Join(lines, "\n")
}

func (t *Timer) helpView() string {
	var bindings []key.Binding

	switch t.state.Phase() {
	case session.Idle:
		bindings = []key.Binding{t.keys.start, t.keys.addExercise}
		bindings = append(bindings, t.editBindings()...)
		bindings = append(bindings, t.keys.quit)
	case session.Running, session.Paused:
		bindings = []key.Binding{t.keys.toggle, t.keys.end}
		if _, total := t.draft.Progress(); total > 0 {
			bindings = append(bindings, t.keys.set)
		}

		bindings = append(bindings, t.keys.addExercise)
		bindings = append(bindings, t.editBindings()...)
		bindings = append(bindings, t.keys.quit)
	case session.Ended:
		bindings = []key.Binding{t.keys.save, t.keys.quit}
	}

	return t.help.ShortHelpView(bindings)
}

func (t *Timer) editBindings() []key.Binding {
	if len(t.draft.Exercises) == 0 {
		return nil
	}

	return []key.Binding{
		t.keys.next,
		t.keys.editSet,
		t.keys.addSet,
		t.keys.dropSet,
		t.keys.dropExercise,
	}
}

func (t *Timer) timerView() string {
	var s strings.Builder

	s.WriteString(t.headerView())
	s.WriteString("\n\n")
	s.WriteString(t.style.elapsed.Render(
		timeutil.FormatElapsed(t.state.ElapsedMs(t.now)),
	))
	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(t.targetFraction()))
	s.WriteString("\n")
	s.WriteString(t.detailView())

	if exercises := t.exerciseView(); exercises != "" {
		s.WriteString("\n\n" + exercises)
	}

	if t.notice != "" {
		s.WriteString("\n\n" + t.style.errorText.Render(t.notice))
	}

	return s.String()
}

func (t *Timer) View() string {
	if t.done {
		return ""
	}

	view := t.timerView()

	switch {
	case t.saving:
		view += "\n\n" + t.style.hint.Render("Saving workout…")
	case t.form != nil:
		view += "\n\n" + t.form.View()
	default:
		view += "\n\n" + t.helpView()
	}

	return t.style.base.Render(view)
}
