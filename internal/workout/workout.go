// Package workout models a workout being logged: its exercises, their sets,
// and the payload sent to the API once the session ends
package workout

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/projectascend/ascend/internal/session"
)

var (
	errNoName       = errors.New("workout name cannot be empty")
	errNoExercise   = errors.New("exercise name cannot be empty")
	errExerciseIdx  = errors.New("exercise index out of range")
	errSetIdx       = errors.New("set index out of range")
	errLastSet      = errors.New("an exercise must have at least one set")
	errUnknownField = errors.New("unknown set field")
)

// Field names an editable value of a set.
type Field string

const (
	FieldReps   Field = "reps"
	FieldWeight Field = "weight"
	FieldRest   Field = "rest"
)

// Set is one set of an exercise.
type Set struct {
	Reps        int     `json:"reps"`
	WeightKg    float64 `json:"weight_kg"`
	RestSeconds int     `json:"rest_seconds"`
	Completed   bool    `json:"completed"`
}

// Exercise is an exercise performed in the workout.
type Exercise struct {
	Name       string `json:"name"`
	Sets       []Set  `json:"sets"`
	ExerciseID int    `json:"exercise_id"`
}

// Draft is a workout under construction.
type Draft struct {
	Name        string        `json:"name"`
	Notes       string        `json:"notes"`
	Exercises   []Exercise    `json:"exercises"`
	DefaultRest time.Duration `json:"default_rest"`
}

// NewDraft returns an empty draft whose new sets rest for defaultRest.
func NewDraft(name, notes string, defaultRest time.Duration) *Draft {
	return &Draft{
		Name:        name,
		Notes:       notes,
		DefaultRest: defaultRest,
	}
}

// EnsureName names an unnamed workout after the day it was started.
func (d *Draft) EnsureName(startedAt time.Time) {
	if strings.TrimSpace(d.Name) != "" {
		return
	}

	d.Name = "Workout - " + startedAt.Format("Jan 02, 2006")
}

// AddExercise appends an exercise with a single empty set.
func (d *Draft) AddExercise(id int, name string) {
	d.Exercises = append(d.Exercises, Exercise{
		ExerciseID: id,
		Name:       name,
		Sets: []Set{
			{RestSeconds: int(d.DefaultRest.Seconds())},
		},
	})
}

// RemoveExercise deletes the exercise at index i.
func (d *Draft) RemoveExercise(i int) error {
	if i < 0 || i >= len(d.Exercises) {
		return fmt.Errorf("%w: %d", errExerciseIdx, i)
	}

	d.Exercises = append(d.Exercises[:i], d.Exercises[i+1:]...)

	return nil
}

// AddSet appends a copy of the last set of exercise i, marked as not
// completed.
func (d *Draft) AddSet(i int) error {
	ex, err := d.exercise(i)
	if err != nil {
		return err
	}

	next := Set{RestSeconds: int(d.DefaultRest.Seconds())}
	if len(ex.Sets) > 0 {
		next = ex.Sets[len(ex.Sets)-1]
		next.Completed = false
	}

	ex.Sets = append(ex.Sets, next)

	return nil
}

// RemoveSet deletes set j of exercise i. The last set cannot be removed.
func (d *Draft) RemoveSet(i, j int) error {
	ex, err := d.exercise(i)
	if err != nil {
		return err
	}

	if j < 0 || j >= len(ex.Sets) {
		return fmt.Errorf("%w: %d", errSetIdx, j)
	}

	if len(ex.Sets) == 1 {
		return errLastSet
	}

	ex.Sets = append(ex.Sets[:j], ex.Sets[j+1:]...)

	return nil
}

// UpdateSet changes one field of set j of exercise i. Negative values are
// stored as zero.
func (d *Draft) UpdateSet(i, j int, field Field, value float64) error {
	set, err := d.set(i, j)
	if err != nil {
		return err
	}

	if value < 0 {
		value = 0
	}

	switch field {
	case FieldReps:
		set.Reps = int(value)
	case FieldWeight:
		set.WeightKg = value
	case FieldRest:
		set.RestSeconds = int(value)
	default:
		return fmt.Errorf("%w: %s", errUnknownField, field)
	}

	return nil
}

// ToggleSet flips the completion of set j of exercise i.
func (d *Draft) ToggleSet(i, j int) error {
	set, err := d.set(i, j)
	if err != nil {
		return err
	}

	set.Completed = !set.Completed

	return nil
}

// Progress returns the number of completed sets and the total number of
// sets.
func (d *Draft) Progress() (completed, total int) {
	for i := range d.Exercises {
		for _, s := range d.Exercises[i].Sets {
			total++

			if s.Completed {
				completed++
			}
		}
	}

	return completed, total
}

// Validate reports whether the draft can be saved. A draft without
// exercises is a timed session on its own and is valid.
func (d *Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errNoName
	}

	for i := range d.Exercises {
		if strings.TrimSpace(d.Exercises[i].Name) == "" {
			return fmt.Errorf("%w: exercise %d", errNoExercise, i+1)
		}
	}

	return nil
}

func (d *Draft) exercise(i int) (*Exercise, error) {
	if i < 0 || i >= len(d.Exercises) {
		return nil, fmt.Errorf("%w: %d", errExerciseIdx, i)
	}

	return &d.Exercises[i], nil
}

func (d *Draft) set(i, j int) (*Set, error) {
	ex, err := d.exercise(i)
	if err != nil {
		return nil, err
	}

	if j < 0 || j >= len(ex.Sets) {
		return nil, fmt.Errorf("%w: %d", errSetIdx, j)
	}

	return &ex.Sets[j], nil
}

// Payload is the request body for creating a workout.
type Payload struct {
	Name            string    `json:"name"`
	DateLogged      time.Time `json:"date_logged"`
	Notes           string    `json:"notes,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
}

// Payload combines the draft with the outcome of its timed session.
func (d *Draft) Payload(sum session.Summary) Payload {
	return Payload{
		Name:            strings.TrimSpace(d.Name),
		DateLogged:      sum.EndedAt.UTC(),
		Notes:           strings.TrimSpace(d.Notes),
		DurationMinutes: sum.DurationMinutes,
	}
}
