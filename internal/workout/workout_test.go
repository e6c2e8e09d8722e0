package workout

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectascend/ascend/internal/session"
	"github.com/projectascend/ascend/internal/testutil"
)

func TestAddSetCopiesPreviousSet(t *testing.T) {
	d := NewDraft("Push day", "", time.Minute)

	d.AddExercise(12, "Bench Press")

	require.NoError(t, d.UpdateSet(0, 0, FieldReps, 8))
	require.NoError(t, d.UpdateSet(0, 0, FieldWeight, 62.5))
	require.NoError(t, d.ToggleSet(0, 0))
	require.NoError(t, d.AddSet(0))

	want := []Set{
		{Reps: 8, WeightKg: 62.5, RestSeconds: 60, Completed: true},
		{Reps: 8, WeightKg: 62.5, RestSeconds: 60},
	}

	if diff := cmp.Diff(want, d.Exercises[0].Sets); diff != "" {
		t.Errorf("sets mismatch (-want +got):\n%s", diff)
	}

	completed, total := d.Progress()
	assert.Equal(t, 1, completed)
	assert.Equal(t, 2, total)
}

func TestRemoveSet(t *testing.T) {
	d := NewDraft("Legs", "", 90*time.Second)

	d.AddExercise(3, "Squat")

	assert.ErrorIs(t, d.RemoveSet(0, 0), errLastSet)

	require.NoError(t, d.AddSet(0))
	require.NoError(t, d.UpdateSet(0, 1, FieldReps, 5))
	require.NoError(t, d.RemoveSet(0, 0))

	assert.Len(t, d.Exercises[0].Sets, 1)
	assert.Equal(t, 5, d.Exercises[0].Sets[0].Reps)
	assert.ErrorIs(t, d.RemoveSet(0, 4), errSetIdx)
}

func TestIndexErrors(t *testing.T) {
	d := NewDraft("", "", 0)

	assert.ErrorIs(t, d.AddSet(0), errExerciseIdx)
	assert.ErrorIs(t, d.RemoveExercise(-1), errExerciseIdx)
	assert.ErrorIs(t, d.ToggleSet(2, 0), errExerciseIdx)

	d.AddExercise(1, "Plank")

	assert.ErrorIs(t, d.UpdateSet(0, 1, FieldRest, 30), errSetIdx)
	assert.ErrorIs(t, d.UpdateSet(0, 0, Field("tempo"), 3), errUnknownField)

	require.NoError(t, d.UpdateSet(0, 0, FieldRest, -30))
	assert.Zero(t, d.Exercises[0].Sets[0].RestSeconds)

	require.NoError(t, d.RemoveExercise(0))
	assert.Empty(t, d.Exercises)
}

func TestValidate(t *testing.T) {
	d := NewDraft("  ", "", time.Minute)

	assert.ErrorIs(t, d.Validate(), errNoName)

	d.EnsureName(time.Date(2025, time.March, 14, 7, 0, 0, 0, time.UTC))
	assert.Equal(t, "Workout - Mar 14, 2025", d.Name)

	assert.NoError(t, d.Validate())

	d.AddExercise(7, "Deadlift")
	d.AddExercise(0, " ")
	assert.ErrorIs(t, d.Validate(), errNoExercise)

	require.NoError(t, d.RemoveExercise(1))
	assert.NoError(t, d.Validate())

	d.EnsureName(time.Now())
	assert.Equal(t, "Workout - Mar 14, 2025", d.Name)
}

type payloadTest struct {
	Name    string
	Payload Payload
}

func (p payloadTest) Output() ([]byte, string) {
	b, err := json.MarshalIndent(p.Payload, "", "  ")
	if err != nil {
		panic(err)
	}

	return append(b, '\n'), p.Name
}

func TestPayload(t *testing.T) {
	start := time.Date(2025, time.March, 14, 7, 0, 0, 0, time.UTC)

	d := NewDraft(" Pull day ", " felt strong ", time.Minute)
	d.AddExercise(21, "Pull-up")

	sum := session.Summary{
		StartedAt:       start,
		EndedAt:         start.Add(47*time.Minute + 30*time.Second),
		Elapsed:         41*time.Minute + 59*time.Second,
		DurationMinutes: 41,
	}

	testutil.CompareGoldenFile(t, payloadTest{
		Name:    "payload",
		Payload: d.Payload(sum),
	})
}
