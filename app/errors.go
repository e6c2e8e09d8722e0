package app

import "github.com/projectascend/ascend/internal/apperr"

var (
	errQuestID = &apperr.Error{
		Message: "invalid quest id %q: expected a positive number",
	}

	errQuestStatus = &apperr.Error{
		Message: "unknown quest status %q: use active, completed, failed or paused",
	}

	errInvalidEmail = &apperr.Error{
		Message: "enter a valid email address",
	}

	errEmptyField = &apperr.Error{
		Message: "%s cannot be empty",
	}
)
