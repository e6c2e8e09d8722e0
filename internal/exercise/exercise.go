// Package exercise describes entries of the exercise library and filters
// them by muscle, equipment, and difficulty
package exercise

import (
	"slices"
	"strings"

	"github.com/maruel/natural"

	"github.com/projectascend/ascend/internal/timeutil"
)

// matchAll is the select value that disables an equipment or difficulty
// filter.
const matchAll = "all"

// Tags classifies an exercise.
type Tags struct {
	Difficulty       string   `json:"difficulty,omitempty"`
	ForceType        string   `json:"force_type,omitempty"`
	MovementPattern  string   `json:"movement_pattern,omitempty"`
	PrimaryMuscles   []string `json:"primary_muscles,omitempty"`
	SecondaryMuscles []string `json:"secondary_muscles,omitempty"`
	Equipment        []string `json:"equipment,omitempty"`
	Discipline       []string `json:"discipline,omitempty"`
}

// Exercise is an entry of the exercise library.
type Exercise struct {
	CreatedAt      timeutil.APITime `json:"created_at"`
	UpdatedAt      timeutil.APITime `json:"updated_at"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	Instructions   string           `json:"instructions"`
	CommonMistakes string           `json:"common_mistakes"`
	VideoURL       string           `json:"video_url,omitempty"`
	Tags           Tags             `json:"tags"`
	ID             int              `json:"id"`
}

// Filter narrows down the exercise library. Zero-valued fields match
// everything.
type Filter struct {
	Search     string
	Equipment  string
	Difficulty string
	Muscles    []string
}

// Match reports whether ex satisfies every criterion of the filter.
func (f Filter) Match(ex *Exercise) bool {
	return f.matchSearch(ex) &&
		f.matchMuscles(ex) &&
		f.matchEquipment(ex) &&
		f.matchDifficulty(ex)
}

// Apply returns the exercises matching the filter in natural name order.
func (f Filter) Apply(exercises []Exercise) []Exercise {
	var result []Exercise

	for i := range exercises {
		if f.Match(&exercises[i]) {
			result = append(result, exercises[i])
		}
	}

	SortByName(result)

	return result
}

func (f Filter) matchSearch(ex *Exercise) bool {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}

	return strings.Contains(strings.ToLower(ex.Name), term) ||
		strings.Contains(strings.ToLower(ex.Description), term)
}

func (f Filter) matchMuscles(ex *Exercise) bool {
	if len(f.Muscles) == 0 {
		return true
	}

	for _, m := range f.Muscles {
		if slices.Contains(ex.Tags.PrimaryMuscles, m) ||
			slices.Contains(ex.Tags.SecondaryMuscles, m) {
			return true
		}
	}

	return false
}

func (f Filter) matchEquipment(ex *Exercise) bool {
	if f.Equipment == "" || f.Equipment == matchAll {
		return true
	}

	return slices.Contains(ex.Tags.Equipment, f.Equipment)
}

func (f Filter) matchDifficulty(ex *Exercise) bool {
	if f.Difficulty == "" || f.Difficulty == matchAll {
		return true
	}

	return ex.Tags.Difficulty == f.Difficulty
}

// SortByName orders exercises so that "Row 2" sorts before "Row 10".
func SortByName(exercises []Exercise) {
	slices.SortStableFunc(exercises, func(a, b Exercise) int {
		switch {
		case natural.Less(a.Name, b.Name):
			return -1
		case natural.Less(b.Name, a.Name):
			return 1
		default:
			return 0
		}
	})
}

// Equipment returns the distinct equipment used across exercises.
func Equipment(exercises []Exercise) []string {
	var all []string

	for i := range exercises {
		all = append(all, exercises[i].Tags.Equipment...)
	}

	return unique(all)
}

// Difficulties returns the distinct difficulty levels across exercises.
func Difficulties(exercises []Exercise) []string {
	var all []string

	for i := range exercises {
		if d := exercises[i].Tags.Difficulty; d != "" {
			all = append(all, d)
		}
	}

	return unique(all)
}

func unique(values []string) []string {
	slices.SortFunc(values, func(a, b string) int {
		if natural.Less(a, b) {
			return -1
		}

		if natural.Less(b, a) {
			return 1
		}

		return 0
	})

	return slices.Compact(values)
}
