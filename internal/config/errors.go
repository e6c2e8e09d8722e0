package config

import "github.com/projectascend/ascend/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errPrompt = &apperr.Error{
		Message: "user prompt failed",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s must be between %v and %v",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid %s duration %q",
	}

	errInvalidRetryMax = &apperr.Error{
		Message: "api retry max must be between %d and %d, got %d",
	}

	errInvalidBaseURL = &apperr.Error{
		Message: "api base url must be an absolute http(s) url, got %q",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "log level must be one of debug, info, warn or error, got %q",
	}

	errInvalidDateRange = &apperr.Error{
		Message: "the start time must be earlier than the end time",
	}

	errInvalidDate = &apperr.Error{
		Message: "unable to understand %s date %q",
	}
)
