package store

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/projectascend/ascend/internal/models"
	"github.com/projectascend/ascend/internal/player"
	"github.com/projectascend/ascend/internal/session"
	"github.com/projectascend/ascend/internal/workout"
)

var t0 = time.Date(2025, time.March, 14, 7, 30, 0, 0, time.UTC)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	c, err := NewClient(filepath.Join(t.TempDir(), "ascend.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func newWorkout(start time.Time, minutes int) *models.Workout {
	end := start.Add(time.Duration(minutes) * time.Minute)

	return &models.Workout{
		StartedAt: start,
		EndedAt:   end,
		Name:      "Workout " + start.Format(time.Kitchen),
		Timeline: []session.Timeline{
			{StartTime: start, EndTime: end},
		},
		ElapsedMs:       int64(minutes) * 60000,
		DurationMinutes: minutes,
	}
}

func TestWorkoutsRange(t *testing.T) {
	c := newTestClient(t)

	early := newWorkout(t0.Add(-2*time.Hour), 30)
	// crosses the start of the queried period
	spanning := newWorkout(t0.Add(-20*time.Minute), 45)
	inside := newWorkout(t0.Add(time.Hour), 40)
	late := newWorkout(t0.Add(5*time.Hour), 20)

	for _, w := range []*models.Workout{late, early, inside, spanning} {
		require.NoError(t, c.SaveWorkout(w))
	}

	got, err := c.Workouts(t0, t0.Add(2*time.Hour))
	require.NoError(t, err)

	names := make([]string, 0, len(got))
	for i := range got {
		names = append(names, got[i].Name)
	}

	assert.Equal(t, []string{spanning.Name, inside.Name}, names)

	all, err := c.Workouts(time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	none, err := c.Workouts(t0.Add(24*time.Hour), time.Time{})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSaveWorkoutRoundTrip(t *testing.T) {
	c := newTestClient(t)

	w := newWorkout(t0, 41)
	w.Exercises = []workout.Exercise{
		{
			Name:       "Pull-up",
			ExerciseID: 7,
			Sets:       []workout.Set{{Reps: 8, RestSeconds: 90, Completed: true}},
		},
	}

	require.NoError(t, c.SaveWorkout(w))

	got, err := c.Workouts(t0, time.Time{})
	require.NoError(t, err)
	require.Len(t, got, 1)

	if diff := cmp.Diff(*w, got[0]); diff != "" {
		t.Errorf("workout mismatch (-want +got):\n%s", diff)
	}
}

func TestMarkSynced(t *testing.T) {
	c := newTestClient(t)

	a := newWorkout(t0, 30)
	b := newWorkout(t0.Add(3*time.Hour), 25)

	require.NoError(t, c.SaveWorkout(a))
	require.NoError(t, c.SaveWorkout(b))

	require.NoError(t, c.MarkSynced(a.StartedAt, 12))

	unsynced, err := c.Unsynced()
	require.NoError(t, err)
	require.Len(t, unsynced, 1)
	assert.Equal(t, b.Name, unsynced[0].Name)

	got, err := c.Workouts(t0, t0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Synced)
	assert.Equal(t, 12, got[0].RemoteID)

	err = c.MarkSynced(t0.Add(-time.Hour), 1)
	assert.ErrorIs(t, err, errWorkoutNotFound)
}

func TestDeleteWorkouts(t *testing.T) {
	c := newTestClient(t)

	a := newWorkout(t0, 30)
	b := newWorkout(t0.Add(time.Hour), 30)

	require.NoError(t, c.SaveWorkout(a))
	require.NoError(t, c.SaveWorkout(b))

	require.NoError(t, c.DeleteWorkouts([]models.Workout{*a}))

	got, err := c.Workouts(time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, b.Name, got[0].Name)
}

func TestActiveSession(t *testing.T) {
	c := newTestClient(t)

	_, err := c.Active()
	assert.ErrorIs(t, err, ErrNoActiveSession)

	a := &models.Active{
		Draft: workout.Draft{
			Name:        "Push day",
			DefaultRest: time.Minute,
		},
		Snapshot: session.Snapshot{
			StartedAt:     t0,
			SavedAt:       t0.Add(10 * time.Minute),
			AccumulatedMs: 600000,
			Phase:         session.Paused,
			Timeline: []session.Timeline{
				{StartTime: t0, EndTime: t0.Add(10 * time.Minute)},
			},
		},
		Target: 45 * time.Minute,
	}

	require.NoError(t, c.SaveActive(a))

	got, err := c.Active()
	require.NoError(t, err)

	if diff := cmp.Diff(a, got); diff != "" {
		t.Errorf("active session mismatch (-want +got):\n%s", diff)
	}

	require.NoError(t, c.DeleteActive())

	_, err = c.Active()
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestToken(t *testing.T) {
	c := newTestClient(t)

	tok, err := c.Token()
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, c.SaveToken("tok-123"))

	tok, err = c.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", tok)

	require.NoError(t, c.ClearToken())

	tok, err = c.Token()
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestCompletedQuests(t *testing.T) {
	c := newTestClient(t)

	active := &models.Quest{ID: 3, Title: "Walk 10k steps", Status: models.QuestActive}
	require.NoError(t, c.SaveQuest(active))

	quests, err := c.CompletedQuests()
	require.NoError(t, err)
	assert.Empty(t, quests)

	done := *active
	done.Status = models.QuestCompleted
	done.XPReward = player.XP{player.END: 40}
	require.NoError(t, c.SaveQuest(&done))
	require.NoError(t, c.SaveQuest(&models.Quest{ID: 300, Status: models.QuestCompleted}))

	quests, err = c.CompletedQuests()
	require.NoError(t, err)
	require.Len(t, quests, 2)
	assert.Equal(t, 3, quests[0].ID)
	assert.Equal(t, 40, quests[0].XPReward[player.END])
	assert.Equal(t, 300, quests[1].ID)
}

func TestSecondClientIsRejected(t *testing.T) {
	timeout := lockTimeout
	lockTimeout = 50 * time.Millisecond

	t.Cleanup(func() {
		lockTimeout = timeout
	})

	path := filepath.Join(t.TempDir(), "ascend.db")

	c, err := NewClient(path)
	require.NoError(t, err)

	defer c.Close()

	_, err = NewClient(path)
	assert.ErrorIs(t, err, errAscendRunning)
}

func TestMigrateWorkoutKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ascend.db")

	w := newWorkout(t0.Add(1500*time.Millisecond), 30)

	db, err := bolt.Open(path, 0o600, nil)
	require.NoError(t, err)

	value, err := json.Marshal(w)
	require.NoError(t, err)

	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucket([]byte(workoutBucket))
		if err != nil {
			return err
		}

		oldKey := []byte(w.StartedAt.Format(time.RFC3339Nano))

		return b.Put(oldKey, value)
	})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	c, err := NewClient(path)
	require.NoError(t, err)

	defer c.Close()

	got, err := c.Workouts(t0, time.Time{})
	require.NoError(t, err)
	require.Len(t, got, 1)

	// MarkSynced looks the workout up by its current key
	require.NoError(t, c.MarkSynced(w.StartedAt, 3))
}
