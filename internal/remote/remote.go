// Package remote pushes locally saved workouts to the Ascend backend
package remote

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/projectascend/ascend/internal/api"
	"github.com/projectascend/ascend/internal/apperr"
	"github.com/projectascend/ascend/internal/models"
	"github.com/projectascend/ascend/internal/workout"
)

// ErrNotLoggedIn is returned when no access token is available.
var ErrNotLoggedIn = &apperr.Error{
	Message: "not logged in: run 'ascend login' to sync workouts",
}

var errPush = &apperr.Error{
	Message: "unable to sync %q",
}

// Backend is the part of the API client used for syncing.
type Backend interface {
	LoggedIn() bool
	CreateWorkout(ctx context.Context, p workout.Payload) (*api.Workout, error)
}

// Store records sync results.
type Store interface {
	MarkSynced(startedAt time.Time, remoteID int) error
	ClearToken() error
}

// Push sends w to the backend and marks it synced. A rejected token is
// removed from the store.
func Push(ctx context.Context, st Store, b Backend, w *models.Workout) error {
	if b == nil || !b.LoggedIn() {
		return ErrNotLoggedIn
	}

	created, err := b.CreateWorkout(ctx, w.Payload())
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			if clearErr := st.ClearToken(); clearErr != nil {
				return errors.Join(err, clearErr)
			}

			return err
		}

		return errPush.Fmt(w.Name).Wrap(err)
	}

	w.Synced = true
	w.RemoteID = created.ID

	return st.MarkSynced(w.StartedAt, created.ID)
}

// PushAll pushes each unsynced workout in order. It stops at the first
// authentication failure and otherwise carries on past individual errors,
// returning them joined.
func PushAll(
	ctx context.Context,
	st Store,
	b Backend,
	workouts []models.Workout,
	logger *slog.Logger,
) (int, error) {
	var (
		pushed int
		errs   []error
	)

	for i := range workouts {
		w := &workouts[i]
		if w.Synced {
			continue
		}

		err := Push(ctx, st, b, w)
		if err != nil {
			logger.WarnContext(
				ctx,
				"workout sync failed",
				slog.String("name", w.Name),
				slog.Time("started_at", w.StartedAt),
				slog.Any("error", err),
			)

			if errors.Is(err, ErrNotLoggedIn) ||
				errors.Is(err, api.ErrUnauthorized) {
				return pushed, err
			}

			errs = append(errs, err)

			continue
		}

		pushed++
	}

	return pushed, errors.Join(errs...)
}
