package store

import (
	"time"

	"github.com/projectascend/ascend/internal/models"
)

// DB is the database storage interface.
type DB interface {
	// SaveWorkout creates or overwrites a workout keyed by its start time
	SaveWorkout(w *models.Workout) error
	// Workouts returns saved workouts that overlap the given period. A zero
	// until means no upper bound
	Workouts(since, until time.Time) ([]models.Workout, error)
	// Unsynced returns workouts that have not reached the backend yet
	Unsynced() ([]models.Workout, error)
	// MarkSynced records the backend identifier of a saved workout
	MarkSynced(startedAt time.Time, remoteID int) error
	// DeleteWorkouts deletes one or more saved workouts
	DeleteWorkouts(workouts []models.Workout) error
	// SaveActive stores the interrupted workout, replacing any previous one
	SaveActive(a *models.Active) error
	// Active returns the interrupted workout
	Active() (*models.Active, error)
	// DeleteActive removes the interrupted workout
	DeleteActive() error
	// SaveQuest creates or overwrites a quest keyed by its backend ID
	SaveQuest(q *models.Quest) error
	// CompletedQuests returns the stored quests whose reward was earned
	CompletedQuests() ([]models.Quest, error)
	SaveToken(token string) error
	// Token returns the stored access token or an empty string
	Token() (string, error)
	ClearToken() error
	// Close ends the database connection
	Close() error
}
