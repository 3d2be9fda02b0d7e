package timer

import "github.com/sanyam-singhal/focus-tracker-lite/internal/apperr"

// ErrInvalidDuration rejects a countdown that is not a positive number of
// minutes.
var ErrInvalidDuration = &apperr.Error{
	Message: "session duration must be a positive number of minutes",
}
