package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectascend/ascend/internal/player"
	"github.com/projectascend/ascend/internal/workout"
)

func newTestClient(t *testing.T, h http.Handler, opts ...Option) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	opts = append([]Option{
		WithRetryMax(2),
		WithRetryWait(time.Millisecond, 2*time.Millisecond),
	}, opts...)

	c, err := New(srv.URL, opts...)
	require.NoError(t, err)

	return c
}

func TestNewRejectsInvalidURL(t *testing.T) {
	for _, u := range []string{"localhost:8000", "ftp://example.com", "::"} {
		_, err := New(u)
		assert.Error(t, err, u)
	}
}

func TestLoginStoresToken(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ada@example.com", body["email"])
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		_, _ = w.Write([]byte(`{
			"access_token": "tok-123",
			"token_type": "bearer",
			"user": {"id": 4, "username": "ada", "email": "ada@example.com"}
		}`))
	})

	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{"id": 4, "username": "ada"}`))
	})

	c := newTestClient(t, mux)

	assert.False(t, c.LoggedIn())

	resp, err := c.Login(context.Background(), "ada@example.com", "hunter2")
	require.NoError(t, err)

	assert.Equal(t, "tok-123", resp.AccessToken)
	assert.Equal(t, 4, resp.User.ID)
	assert.True(t, c.LoggedIn())

	u, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ada", u.Username)
}

func TestUnauthorized(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}), WithToken("expired"))

	_, err := c.PlayerStats(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestServerErrorsAreRetried(t *testing.T) {
	var attempts atomic.Int64

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"detail": "database unavailable"}`))
	}))

	_, err := c.Workouts(context.Background(), 0)
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusServiceUnavailable, se.Code)
	assert.Equal(t, "database unavailable", se.Detail)
	assert.Equal(t, int64(3), attempts.Load())
}

func TestClientErrorsAreNotRetried(t *testing.T) {
	var attempts atomic.Int64

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		http.Error(w, `{"detail": "Exercise not found"}`, http.StatusNotFound)
	}))

	_, err := c.Exercise(context.Background(), 99)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.Code)
	assert.Equal(t, "GET /exercises/99: 404 Exercise not found", se.Error())
	assert.Equal(t, int64(1), attempts.Load())
}

func TestExercisesQuery(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/exercises", r.URL.Path)
		assert.Equal(t, "row", r.URL.Query().Get("search"))
		assert.Equal(t, "back", r.URL.Query().Get("muscle_group"))
		assert.False(t, r.URL.Query().Has("equipment"))

		_, _ = w.Write([]byte(`[{"id": 2, "name": "Barbell Row", "tags": {"primary_muscles": ["back"], "difficulty": "intermediate"}}]`))
	}))

	list, err := c.Exercises(context.Background(), ExerciseQuery{
		Search:      "row",
		MuscleGroup: "back",
	})
	require.NoError(t, err)

	require.Len(t, list, 1)
	assert.Equal(t, "intermediate", list[0].Tags.Difficulty)
	assert.Equal(t, []string{"back"}, list[0].Tags.PrimaryMuscles)
}

func TestCreateWorkout(t *testing.T) {
	logged := time.Date(2025, time.March, 14, 8, 0, 0, 0, time.UTC)

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var p workout.Payload

		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		assert.Equal(t, "Leg day", p.Name)
		assert.Equal(t, 50, p.DurationMinutes)
		assert.True(t, p.DateLogged.Equal(logged))

		_, _ = w.Write([]byte(`{"id": 31, "name": "Leg day", "duration_minutes": 50, "xp_earned": {"STR": 25, "END": 12}}`))
	}), WithToken("tok"))

	w, err := c.CreateWorkout(context.Background(), workout.Payload{
		Name:            "Leg day",
		DateLogged:      logged,
		DurationMinutes: 50,
	})
	require.NoError(t, err)

	assert.Equal(t, 31, w.ID)
	assert.Equal(t, player.XP{player.STR: 25, player.END: 12}, w.XPEarned)
	require.NotNil(t, w.DurationMinutes)
	assert.Equal(t, 50, *w.DurationMinutes)
}

func TestPlayerStatsDecoding(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"level": 2,
			"total_xp": 1250,
			"xp_to_next_level": 750,
			"attributes": {"STR": {"value": 9, "xp": 800}, "END": {"value": 5, "xp": 450}}
		}`))
	}), WithToken("tok"))

	s, err := c.PlayerStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, s.Level)
	assert.InDelta(t, 0.25, s.LevelProgress(), 1e-9)
	assert.Equal(t, player.AttributeStat{Value: 9, XP: 800}, s.Attribute(player.STR))
	assert.Equal(t, player.AttributeStat{Value: 1}, s.Attribute(player.CHA))
}

func TestWorkoutsLimit(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`[]`))
	}))

	list, err := c.Workouts(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateWorkoutIsNotRetried(t *testing.T) {
	var attempts atomic.Int64

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}), WithToken("tok"))

	_, err := c.CreateWorkout(context.Background(), workout.Payload{Name: "Leg day"})

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusServiceUnavailable, se.Code)
	assert.Equal(t, int64(1), attempts.Load())
}

func TestIdempotentMethods(t *testing.T) {
	assert.True(t, idempotent(http.MethodGet))
	assert.True(t, idempotent(http.MethodDelete))
	assert.False(t, idempotent(http.MethodPost))
	assert.False(t, idempotent(http.MethodPatch))
}

func TestRegisterStoresToken(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register", r.URL.Path)

		var body Registration

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ada", body.Username)
		assert.Equal(t, "cloud", body.StoragePreference)
		assert.Equal(t, "strength", body.PrimaryGoal)

		_, _ = w.Write([]byte(`{"access_token": "tok-9", "user": {"id": 9, "username": "ada"}}`))
	}))

	resp, err := c.Register(context.Background(), Registration{
		Username:    "ada",
		Email:       "ada@example.com",
		Password:    "hunter2",
		PrimaryGoal: "strength",
	})
	require.NoError(t, err)

	assert.Equal(t, 9, resp.User.ID)
	assert.True(t, c.LoggedIn())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "Email already registered"}`, http.StatusBadRequest)
	}))

	_, err := c.Register(context.Background(), Registration{Username: "ada"})

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "Email already registered", se.Detail)
	assert.False(t, c.LoggedIn())
}

func TestQuestsStatusFilter(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quests", r.URL.Path)
		assert.Equal(t, "active", r.URL.Query().Get("status"))

		_, _ = w.Write([]byte(`[{
			"id": 5,
			"title": "Iron Will",
			"type": "fitness",
			"status": "active",
			"xp_reward": {"STR": 50, "CHA": 20},
			"due_date": "2025-03-15T00:00:00",
			"completed_at": null
		}]`))
	}), WithToken("tok"))

	list, err := c.Quests(context.Background(), "active")
	require.NoError(t, err)

	require.Len(t, list, 1)
	assert.Equal(t, "Iron Will", list[0].Title)
	assert.Equal(t, player.XP{player.STR: 50, player.CHA: 20}, list[0].XPReward)
	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), list[0].DueDate.Time)
	assert.Nil(t, list[0].CompletedAt)
	assert.False(t, list[0].Completed())
}

func TestCompleteQuest(t *testing.T) {
	var attempts atomic.Int64

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/quests/5/complete", r.URL.Path)

		_, _ = w.Write([]byte(`{"id": 5, "status": "completed", "xp_reward": {"STR": 50}, "completed_at": "2025-03-14T09:00:00Z"}`))
	}), WithToken("tok"))

	q, err := c.CompleteQuest(context.Background(), 5)
	require.NoError(t, err)

	assert.True(t, q.Completed())
	require.NotNil(t, q.CompletedAt)
	assert.Equal(t, int64(1), attempts.Load())
}
