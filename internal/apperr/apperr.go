// Package apperr defines the error values used throughout the application
package apperr

// Error is an application error with an optional underlying cause.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Wrap returns a copy of e that carries err as its cause. The copy still
// matches e in errors.Is comparisons.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   err,
	}
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.Message == e.Message
}
