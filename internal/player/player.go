// Package player computes the RPG progression of a user from the experience
// points earned by workouts and quests
package player

import "slices"

const (
	XPPerLevel     = 1000
	XPPerAttribute = 100
)

// Attribute names one of the five player attributes.
type Attribute string

const (
	STR Attribute = "STR"
	AGI Attribute = "AGI"
	END Attribute = "END"
	INT Attribute = "INT"
	CHA Attribute = "CHA"
)

// Attributes lists every attribute in display order.
var Attributes = []Attribute{STR, AGI, END, INT, CHA}

// XP maps attributes to experience points.
type XP map[Attribute]int

// AttributeStat is the progression of a single attribute.
type AttributeStat struct {
	Value int `json:"value"`
	XP    int `json:"xp"`
}

// Stats is the player's overall progression.
type Stats struct {
	Attributes    map[Attribute]AttributeStat `json:"attributes"`
	Level         int                         `json:"level"`
	TotalXP       int                         `json:"total_xp"`
	XPToNextLevel int                         `json:"xp_to_next_level"`
}

// Compute derives player stats from the XP awarded by each activity.
// Unknown attributes are ignored.
func Compute(awards ...XP) Stats {
	stats := Stats{
		Attributes: make(map[Attribute]AttributeStat, len(Attributes)),
	}

	for _, award := range awards {
		for attr, xp := range award {
			if !slices.Contains(Attributes, attr) {
				continue
			}

			a := stats.Attributes[attr]
			a.XP += xp
			stats.Attributes[attr] = a
			stats.TotalXP += xp
		}
	}

	for _, attr := range Attributes {
		a := stats.Attributes[attr]
		a.Value = 1 + a.XP/XPPerAttribute
		stats.Attributes[attr] = a
	}

	stats.Level = 1 + stats.TotalXP/XPPerLevel
	stats.XPToNextLevel = XPPerLevel - stats.TotalXP%XPPerLevel

	return stats
}

// LevelProgress returns the fraction of the current level completed, in the
// range [0, 1).
func (s Stats) LevelProgress() float64 {
	if s.TotalXP <= 0 {
		return 0
	}

	return float64(s.TotalXP%XPPerLevel) / XPPerLevel
}

// Attribute returns the stat of attr, defaulting to the starting value.
func (s Stats) Attribute(attr Attribute) AttributeStat {
	if a, ok := s.Attributes[attr]; ok {
		return a
	}

	return AttributeStat{Value: 1}
}

// WorkoutXP estimates the XP a workout of the given length earns. Workouts
// without a recorded duration count as 30 minutes.
func WorkoutXP(durationMinutes int) XP {
	if durationMinutes <= 0 {
		durationMinutes = 30
	}

	base := max(20, durationMinutes/2)

	return XP{
		STR: base,
		END: base / 2,
	}
}
