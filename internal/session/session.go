// Package session tracks the elapsed time of a workout session across any
// number of pause and resume cycles
package session

import (
	"fmt"
	"time"

	"github.com/projectascend/ascend/internal/clock"
)

// Phase is the temporal state of a session.
type Phase int

const (
	Idle Phase = iota
	Running
	Paused
	Ended
)

var phaseNames = map[Phase]string{
	Idle:    "idle",
	Running: "running",
	Paused:  "paused",
	Ended:   "ended",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}

	return fmt.Sprintf("phase(%d)", int(p))
}

func (p Phase) MarshalText() ([]byte, error) {
	if _, ok := phaseNames[p]; !ok {
		return nil, fmt.Errorf("unknown session phase: %d", int(p))
	}

	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(b []byte) error {
	for k, v := range phaseNames {
		if v == string(b) {
			*p = k
			return nil
		}
	}

	return fmt.Errorf("unknown session phase: %q", string(b))
}

type Timeline struct {
	// StartTime is the instant the session entered the running phase
	StartTime time.Time `json:"start_time"`
	// EndTime is the instant the session was paused or ended
	EndTime time.Time `json:"end_time"`
}

// Duration returns the length of the interval.
func (t Timeline) Duration() time.Duration {
	return nonNegative(t.EndTime.Sub(t.StartTime))
}

// State holds the temporal state of a single session. It is not safe for
// concurrent use: the component that creates it owns it.
type State struct {
	clock         clock.Clock
	startedAt     time.Time
	lastResumedAt time.Time
	endedAt       time.Time
	timeline      []Timeline
	accumulated   time.Duration
	phase         Phase
}

// New returns an idle session that reads the current time from c.
func New(c clock.Clock) *State {
	if c == nil {
		c = clock.System
	}

	return &State{
		clock: c,
		phase: Idle,
	}
}

func (s *State) Phase() Phase {
	return s.phase
}

// StartedAt returns the instant the session was started, or the zero time if
// it has not been started.
func (s *State) StartedAt() time.Time {
	return s.startedAt
}

// LastResumedAt returns the instant of the latest transition into Running.
// It is the zero time unless the session is running.
func (s *State) LastResumedAt() time.Time {
	return s.lastResumedAt
}

// EndedAt returns the instant the session was ended.
func (s *State) EndedAt() time.Time {
	return s.endedAt
}

// AccumulatedMs returns the milliseconds accrued by finished running
// intervals.
func (s *State) AccumulatedMs() int64 {
	return s.accumulated.Milliseconds()
}

// Timeline returns a copy of the finished running intervals.
func (s *State) Timeline() []Timeline {
	t := make([]Timeline, len(s.timeline))
	copy(t, s.timeline)

	return t
}

// Start begins a fresh session. It is valid from Idle, and from Ended where
// it discards the previous session.
func (s *State) Start() error {
	if s.phase != Idle && s.phase != Ended {
		return &TransitionError{Op: OpStart, Phase: s.phase}
	}

	now := s.clock.Now()

	s.startedAt = now
	s.lastResumedAt = now
	s.endedAt = time.Time{}
	s.accumulated = 0
	s.timeline = nil
	s.phase = Running

	return nil
}

// Pause freezes the elapsed time.
func (s *State) Pause() error {
	if s.phase != Running {
		return &TransitionError{Op: OpPause, Phase: s.phase}
	}

	s.fold(s.clock.Now())
	s.phase = Paused

	return nil
}

// Resume continues a paused session.
func (s *State) Resume() error {
	if s.phase != Paused {
		return &TransitionError{Op: OpResume, Phase: s.phase}
	}

	s.lastResumedAt = s.clock.Now()
	s.phase = Running

	return nil
}

// End finalises the session. The accumulated time cannot change afterwards.
func (s *State) End() error {
	if s.phase != Running && s.phase != Paused {
		return &TransitionError{Op: OpEnd, Phase: s.phase}
	}

	now := s.clock.Now()

	if s.phase == Running {
		s.fold(now)
	}

	s.endedAt = now
	s.phase = Ended

	return nil
}

// Elapsed returns the total running time of the session at now.
func (s *State) Elapsed(now time.Time) time.Duration {
	if s.phase != Running {
		return s.accumulated
	}

	return s.accumulated + nonNegative(now.Sub(s.lastResumedAt))
}

// ElapsedMs returns the total running time of the session at now in
// milliseconds.
func (s *State) ElapsedMs(now time.Time) int64 {
	return s.Elapsed(now).Milliseconds()
}

// fold closes the open running interval at now.
func (s *State) fold(now time.Time) {
	end := now
	if end.Before(s.lastResumedAt) {
		end = s.lastResumedAt
	}

	s.accumulated += end.Sub(s.lastResumedAt)
	s.timeline = append(s.timeline, Timeline{
		StartTime: s.lastResumedAt,
		EndTime:   end,
	})
	s.lastResumedAt = time.Time{}
}

func nonNegative(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}

	return d
}
