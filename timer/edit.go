package timer

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/projectascend/ascend/internal/session"
	"github.com/projectascend/ascend/internal/workout"
)

var errNotANumber = errors.New("enter a number of zero or more")

// setEdit holds the form values for the set being edited.
type setEdit struct {
	reps     string
	weight   string
	exercise int
	set      int
}

// currentSet is the first unfinished set of exercise i, or its last set
// when all are done.
func (t *Timer) currentSet(i int) int {
	sets := t.draft.Exercises[i].Sets
	for j := range sets {
		if !sets[j].Completed {
			return j
		}
	}

	return len(sets) - 1
}

func (t *Timer) selectExercise(delta int) {
	n := len(t.draft.Exercises)
	if n == 0 {
		t.selected = 0
		return
	}

	t.selected = (t.selected + delta + n) % n
}

// clampSelection keeps the cursor on an existing exercise.
func (t *Timer) clampSelection() {
	t.selected = max(min(t.selected, len(t.draft.Exercises)-1), 0)
}

func (t *Timer) addSet() {
	if len(t.draft.Exercises) == 0 {
		return
	}

	if err := t.draft.AddSet(t.selected); err != nil {
		t.notice = err.Error()
		return
	}

	t.persistDraft()
}

func (t *Timer) dropSet() {
	if len(t.draft.Exercises) == 0 {
		return
	}

	last := len(t.draft.Exercises[t.selected].Sets) - 1
	if err := t.draft.RemoveSet(t.selected, last); err != nil {
		t.notice = err.Error()
		return
	}

	t.persistDraft()
}

func (t *Timer) dropExercise() {
	if err := t.draft.RemoveExercise(t.selected); err != nil {
		t.notice = err.Error()
		return
	}

	t.clampSelection()
	t.persistDraft()
}

func validNumber(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return errNotANumber
	}

	return nil
}

func (t *Timer) openSetForm() tea.Cmd {
	if len(t.draft.Exercises) == 0 {
		return nil
	}

	j := t.currentSet(t.selected)
	set := t.draft.Exercises[t.selected].Sets[j]

	t.edit = setEdit{
		exercise: t.selected,
		set:      j,
		reps:     strconv.Itoa(set.Reps),
		weight:   strconv.FormatFloat(set.WeightKg, 'f', -1, 64),
	}

	title := t.draft.Exercises[t.selected].Name + " · set " + strconv.Itoa(j+1)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description("Reps").
				Validate(validNumber).
				Value(&t.edit.reps),
			huh.NewInput().
				Title("Weight (kg)").
				Validate(validNumber).
				Value(&t.edit.weight),
		),
	)

	return t.openForm(form, func(aborted bool) tea.Cmd {
		if !aborted {
			t.applySetEdit()
		}

		return nil
	})
}

// applySetEdit writes the edited reps and weight back into the draft.
func (t *Timer) applySetEdit() {
	fields := []struct {
		field workout.Field
		value string
	}{
		{workout.FieldReps, t.edit.reps},
		{workout.FieldWeight, t.edit.weight},
	}

	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f.value), 64)
		if err != nil {
			t.notice = errNotANumber.Error()
			return
		}

		err = t.draft.UpdateSet(t.edit.exercise, t.edit.set, f.field, v)
		if err != nil {
			t.logger.Warn("update set", slog.Any("error", err))
			t.notice = err.Error()

			return
		}
	}

	t.persistDraft()
}

func (t *Timer) openExerciseForm() tea.Cmd {
	t.newExercise = ""

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Exercise").
				Placeholder("Barbell Squat").
				Value(&t.newExercise),
		),
	)

	return t.openForm(form, func(aborted bool) tea.Cmd {
		if !aborted {
			t.addExercise(t.newExercise)
		}

		return nil
	})
}

func (t *Timer) addExercise(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	t.draft.AddExercise(0, name)
	t.selected = len(t.draft.Exercises) - 1
	t.persistDraft()
}

// persistDraft keeps the stored snapshot in step with draft edits made
// during an unfinished session.
func (t *Timer) persistDraft() {
	switch t.state.Phase() {
	case session.Running, session.Paused:
		t.persist()
	case session.Idle, session.Ended:
	}
}
