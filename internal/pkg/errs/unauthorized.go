package errs

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is the sentinel error for permission failures: an actor's
// role does not allow the attempted operation, or authentication failed closed.
var ErrUnauthorized = errors.New("unauthorized")

// UnauthorizedError reports which actor attempted which action.
type UnauthorizedError struct {
	Username string
	Action   string
	Cause    error
}

// NewUnauthorizedError creates an UnauthorizedError for the given actor and action.
func NewUnauthorizedError(username, action string) *UnauthorizedError {
	return &UnauthorizedError{Username: username, Action: action}
}

// NewUnauthorizedErrorWithCause creates an UnauthorizedError wrapping the
// underlying permission failure.
func NewUnauthorizedErrorWithCause(username, action string, cause error) *UnauthorizedError {
	return &UnauthorizedError{Username: username, Action: action, Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s may not %s (cause: %s)", ErrUnauthorized, e.Username, e.Action, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s may not %s", ErrUnauthorized, e.Username, e.Action))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}
