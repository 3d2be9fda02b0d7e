package session

import "github.com/sanyam-singhal/focus-tracker-lite/internal/apperr"

var (
	// ErrInvalidState rejects an operation that the current lifecycle
	// state forbids, such as starting a session while another one is
	// active.
	ErrInvalidState = &apperr.Error{
		Message: "operation not allowed in the current session state",
	}

	errSessionCmd = &apperr.Error{
		Message: "unable to run the session command",
	}
)
