package store

import "github.com/sanyam-singhal/focus-tracker-lite/internal/apperr"

var (
	// ErrStorage reports a persistence failure. The operation that
	// produced it may be retried once the underlying fault clears.
	ErrStorage = &apperr.Error{
		Message: "session storage failed",
	}

	errAlreadyRunning = &apperr.Error{
		Message: "is focus-tracker already running? Only one instance can be active at a time",
	}
)
