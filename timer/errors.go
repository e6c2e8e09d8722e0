package timer

import "github.com/projectascend/ascend/internal/apperr"

var (
	errSaveWorkout = &apperr.Error{
		Message: "unable to save workout",
	}

	errPersistSession = &apperr.Error{
		Message: "unable to store the interrupted workout",
	}

	errBellTimeout = &apperr.Error{
		Message: "the bell did not finish playing",
	}

	errSessionCmd = &apperr.Error{
		Message: "unable to parse settings.cmd %q",
	}
)
