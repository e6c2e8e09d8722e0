package session

import (
	"fmt"
	"time"

	"github.com/projectascend/ascend/internal/clock"
)

const msPerMinute = 60000

// Summary is the outcome of an ended session handed to the save flow.
type Summary struct {
	StartedAt       time.Time     `json:"started_at"`
	EndedAt         time.Time     `json:"ended_at"`
	Timeline        []Timeline    `json:"timeline"`
	Elapsed         time.Duration `json:"elapsed"`
	DurationMinutes int           `json:"duration_minutes"`
}

// Summary returns the final figures of an ended session.
func (s *State) Summary() (Summary, error) {
	if s.phase != Ended {
		return Summary{}, errNotEnded
	}

	ms := s.ElapsedMs(s.endedAt)

	return Summary{
		StartedAt:       s.startedAt,
		EndedAt:         s.endedAt,
		Timeline:        s.Timeline(),
		Elapsed:         s.accumulated,
		DurationMinutes: int(ms / msPerMinute),
	}, nil
}

// Snapshot is the serialisable form of an unfinished session.
type Snapshot struct {
	StartedAt     time.Time  `json:"started_at"`
	SavedAt       time.Time  `json:"saved_at"`
	Timeline      []Timeline `json:"timeline"`
	AccumulatedMs int64      `json:"accumulated_ms"`
	Phase         Phase      `json:"phase"`
}

// Snapshot captures the session for later recovery. A running session is
// captured as if it had been paused at the current instant, so time spent
// while the program is not running never counts.
func (s *State) Snapshot() Snapshot {
	now := s.clock.Now()

	timeline := s.Timeline()
	phase := s.phase

	if s.phase == Running {
		end := now
		if end.Before(s.lastResumedAt) {
			end = s.lastResumedAt
		}

		timeline = append(timeline, Timeline{
			StartTime: s.lastResumedAt,
			EndTime:   end,
		})
		phase = Paused
	}

	return Snapshot{
		Phase:         phase,
		StartedAt:     s.startedAt,
		SavedAt:       now,
		Timeline:      timeline,
		AccumulatedMs: s.ElapsedMs(now),
	}
}

// Restore rebuilds a paused session from a snapshot.
func Restore(c clock.Clock, snap Snapshot) (*State, error) {
	if snap.Phase != Paused || snap.StartedAt.IsZero() ||
		snap.AccumulatedMs < 0 {
		return nil, fmt.Errorf(
			"%w: phase %s, accumulated %dms",
			errInvalidSnapshot,
			snap.Phase,
			snap.AccumulatedMs,
		)
	}

	s := New(c)
	s.phase = Paused
	s.startedAt = snap.StartedAt
	s.accumulated = time.Duration(snap.AccumulatedMs) * time.Millisecond
	s.timeline = append([]Timeline(nil), snap.Timeline...)

	return s, nil
}
