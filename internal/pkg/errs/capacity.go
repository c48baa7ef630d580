package errs

import (
	"errors"
	"fmt"
)

// ErrCapacityExceeded is the sentinel error for warehouse and vehicle capacity
// violations. Operations that would push a resource past its capacity abort
// with an error wrapping this sentinel and leave the resource unchanged.
var ErrCapacityExceeded = errors.New("capacity exceeded")

// CapacityExceededError reports which resource refused an allocation and why.
type CapacityExceededError struct {
	ResourceID string
	Cause      error
}

// NewCapacityExceededError creates a CapacityExceededError for the given resource.
func NewCapacityExceededError(resourceID string) *CapacityExceededError {
	return &CapacityExceededError{ResourceID: resourceID}
}

// NewCapacityExceededErrorWithCause creates a CapacityExceededError wrapping the
// check that failed.
func NewCapacityExceededErrorWithCause(resourceID string, cause error) *CapacityExceededError {
	return &CapacityExceededError{ResourceID: resourceID, Cause: cause}
}

func (e *CapacityExceededError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrCapacityExceeded, e.ResourceID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrCapacityExceeded, e.ResourceID))
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}
