package session

import (
	"errors"
	"fmt"
)

// Op names a session transition.
type Op string

const (
	OpStart  Op = "start"
	OpPause  Op = "pause"
	OpResume Op = "resume"
	OpEnd    Op = "end"
)

// ErrInvalidTransition matches every TransitionError.
var ErrInvalidTransition = errors.New("invalid session transition")

var (
	errNotEnded        = errors.New("session summary requested before the session ended")
	errInvalidSnapshot = errors.New("session snapshot cannot be restored")
)

// TransitionError reports a transition that is not allowed from the current
// phase. The session is left unchanged.
type TransitionError struct {
	Op    Op
	Phase Phase
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s a session that is %s", e.Op, e.Phase)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
