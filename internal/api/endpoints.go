package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/davecgh/go-spew/spew"

	"github.com/projectascend/ascend/internal/exercise"
	"github.com/projectascend/ascend/internal/models"
	"github.com/projectascend/ascend/internal/player"
	"github.com/projectascend/ascend/internal/timeutil"
	"github.com/projectascend/ascend/internal/workout"
)

// User is the authenticated account.
type User struct {
	CreatedAt     timeutil.APITime `json:"created_at"`
	PlayerStats   *player.Stats    `json:"player_stats,omitempty"`
	Username      string           `json:"username"`
	Email         string           `json:"email"`
	PrimaryGoal   string           `json:"primary_goal"`
	ActivityLevel string           `json:"activity_level"`
	ID            int              `json:"id"`
}

// AuthResponse is returned by the login endpoint.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// Workout is a workout stored by the backend.
type Workout struct {
	DateLogged      timeutil.APITime `json:"date_logged"`
	CreatedAt       timeutil.APITime `json:"created_at"`
	XPEarned        player.XP        `json:"xp_earned"`
	DurationMinutes *int             `json:"duration_minutes"`
	Name            string           `json:"name"`
	Notes           string           `json:"notes"`
	ID              int              `json:"id"`
	UserID          int              `json:"user_id"`
}

// Registration is the sign-up form of a new account.
type Registration struct {
	Username          string `json:"username"`
	Email             string `json:"email"`
	Password          string `json:"password"`
	StoragePreference string `json:"storage_preference"`
	PrimaryGoal       string `json:"primary_goal"`
	ActivityLevel     string `json:"activity_level"`
}

// Goals accepted as a primary goal.
var Goals = []string{
	"general_fitness",
	"weight_loss",
	"muscle_gain",
	"endurance",
	"strength",
}

// ActivityLevels accepted as an activity level.
var ActivityLevels = []string{
	"sedentary",
	"lightly_active",
	"moderately_active",
	"very_active",
	"extremely_active",
}

// ExerciseQuery holds the server-side exercise filters.
type ExerciseQuery struct {
	Search      string
	MuscleGroup string
	Equipment   string
	Difficulty  string
}

func (q ExerciseQuery) values() url.Values {
	v := url.Values{}

	set := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}

	set("search", q.Search)
	set("muscle_group", q.MuscleGroup)
	set("equipment", q.Equipment)
	set("difficulty", q.Difficulty)

	return v
}

// Login exchanges credentials for a token. On success the client uses the
// new token for subsequent requests.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var resp AuthResponse

	err := c.do(ctx, http.MethodPost, "/auth/login", nil, map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}

	c.SetToken(resp.AccessToken)

	return &resp, nil
}

// Register creates an account and signs in with it.
func (c *Client) Register(ctx context.Context, r Registration) (*AuthResponse, error) {
	if r.StoragePreference == "" {
		r.StoragePreference = "cloud"
	}

	var resp AuthResponse

	err := c.do(ctx, http.MethodPost, "/auth/register", nil, r, &resp)
	if err != nil {
		return nil, err
	}

	c.SetToken(resp.AccessToken)

	return &resp, nil
}

// Me returns the authenticated user.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var u User

	err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &u)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// PlayerStats returns the RPG progression of the authenticated user.
func (c *Client) PlayerStats(ctx context.Context) (*player.Stats, error) {
	var s player.Stats

	err := c.do(ctx, http.MethodGet, "/users/me/stats", nil, nil, &s)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// Exercises lists the exercise library.
func (c *Client) Exercises(ctx context.Context, q ExerciseQuery) ([]exercise.Exercise, error) {
	var list []exercise.Exercise

	err := c.do(ctx, http.MethodGet, "/exercises", q.values(), nil, &list)
	if err != nil {
		return nil, err
	}

	return list, nil
}

// Exercise returns a single exercise.
func (c *Client) Exercise(ctx context.Context, id int) (*exercise.Exercise, error) {
	var ex exercise.Exercise

	err := c.do(ctx, http.MethodGet, "/exercises/"+strconv.Itoa(id), nil, nil, &ex)
	if err != nil {
		return nil, err
	}

	return &ex, nil
}

// CreateWorkout stores a finished workout.
func (c *Client) CreateWorkout(ctx context.Context, p workout.Payload) (*Workout, error) {
	c.logger.DebugContext(ctx, "creating workout", "payload", spew.Sdump(p))

	var w Workout

	err := c.do(ctx, http.MethodPost, "/workouts", nil, p, &w)
	if err != nil {
		return nil, err
	}

	return &w, nil
}

// Workouts lists the user's workouts, most recent first. A limit of zero
// returns all of them.
func (c *Client) Workouts(ctx context.Context, limit int) ([]Workout, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var list []Workout

	err := c.do(ctx, http.MethodGet, "/workouts", q, nil, &list)
	if err != nil {
		return nil, err
	}

	return list, nil
}

// Quests lists the user's quests, newest first. An empty status returns
// quests of every status.
func (c *Client) Quests(ctx context.Context, status string) ([]models.Quest, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}

	var list []models.Quest

	err := c.do(ctx, http.MethodGet, "/quests", q, nil, &list)
	if err != nil {
		return nil, err
	}

	return list, nil
}

// CompleteQuest marks a quest as completed and returns it.
func (c *Client) CompleteQuest(ctx context.Context, id int) (*models.Quest, error) {
	var q models.Quest

	path := "/quests/" + strconv.Itoa(id) + "/complete"

	err := c.do(ctx, http.MethodPost, path, nil, nil, &q)
	if err != nil {
		return nil, err
	}

	return &q, nil
}
