package store

import "github.com/projectascend/ascend/internal/apperr"

var (
	errAscendRunning = &apperr.Error{
		Message: "is Ascend already running? Only one instance can be active at a time",
	}

	errNoActiveSession = &apperr.Error{
		Message: "no interrupted workout found: start a new one with 'ascend workout'",
	}

	errWorkoutNotFound = &apperr.Error{
		Message: "no workout started at %s",
	}

	errCorruptRecord = &apperr.Error{
		Message: "unable to decode record %q",
	}
)

// ErrNoActiveSession is returned by Active when nothing is waiting to be
// resumed.
var ErrNoActiveSession = errNoActiveSession
