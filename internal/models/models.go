// Package models holds the records Ascend persists between runs
package models

import (
	"time"

	"github.com/projectascend/ascend/internal/player"
	"github.com/projectascend/ascend/internal/session"
	"github.com/projectascend/ascend/internal/timeutil"
	"github.com/projectascend/ascend/internal/workout"
)

// Workout is a finished workout as kept in the local database.
type Workout struct {
	StartedAt time.Time          `json:"started_at"`
	EndedAt   time.Time          `json:"ended_at"`
	Name      string             `json:"name"`
	Notes     string             `json:"notes"`
	Exercises []workout.Exercise `json:"exercises"`
	Timeline  []session.Timeline `json:"timeline"`
	// ElapsedMs is the active time, excluding pauses
	ElapsedMs       int64 `json:"elapsed_ms"`
	DurationMinutes int   `json:"duration_minutes"`
	// RemoteID is the backend identifier, set once the workout is synced
	RemoteID int  `json:"remote_id,omitempty"`
	Synced   bool `json:"synced"`
}

// NewWorkout combines a draft with the summary of its ended session.
func NewWorkout(d *workout.Draft, sum session.Summary) *Workout {
	d.EnsureName(sum.StartedAt)

	return &Workout{
		StartedAt:       sum.StartedAt,
		EndedAt:         sum.EndedAt,
		Name:            d.Name,
		Notes:           d.Notes,
		Exercises:       d.Exercises,
		Timeline:        sum.Timeline,
		ElapsedMs:       sum.Elapsed.Milliseconds(),
		DurationMinutes: sum.DurationMinutes,
	}
}

// Payload returns the request body used to log the workout remotely.
func (w *Workout) Payload() workout.Payload {
	d := workout.Draft{
		Name:  w.Name,
		Notes: w.Notes,
	}

	return d.Payload(session.Summary{
		StartedAt:       w.StartedAt,
		EndedAt:         w.EndedAt,
		DurationMinutes: w.DurationMinutes,
	})
}

// Active is an interrupted workout that can be resumed later.
type Active struct {
	Draft    workout.Draft    `json:"draft"`
	Snapshot session.Snapshot `json:"snapshot"`
	Target   time.Duration    `json:"target"`
}

// Quest statuses used by the backend.
const (
	QuestActive    = "active"
	QuestCompleted = "completed"
	QuestFailed    = "failed"
	QuestPaused    = "paused"
)

// Quest is a challenge with an experience reward. Completed quests are kept
// locally so their rewards count towards estimated stats.
type Quest struct {
	DueDate     timeutil.APITime  `json:"due_date"`
	CreatedAt   timeutil.APITime  `json:"created_at"`
	CompletedAt *timeutil.APITime `json:"completed_at"`
	XPReward    player.XP         `json:"xp_reward"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Type        string            `json:"type"`
	Status      string            `json:"status"`
	ID          int               `json:"id"`
	UserID      int               `json:"user_id"`
}

// Completed reports whether the quest's reward has been earned.
func (q *Quest) Completed() bool {
	return q.Status == QuestCompleted
}
