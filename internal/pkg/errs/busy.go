package errs

import (
	"errors"
	"fmt"
)

var ErrBusy = errors.New("resource is busy")

// BusyError reports that a lock wait or operation deadline expired. It is the
// only error class callers are expected to retry.
type BusyError struct {
	Resource string
	Cause    error
}

func NewBusyErrorWithCause(resource string, cause error) *BusyError {
	return &BusyError{
		Resource: resource,
		Cause:    cause,
	}
}

func NewBusyError(resource string) *BusyError {
	return &BusyError{
		Resource: resource,
	}
}

func (e *BusyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrBusy, e.Resource, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrBusy, e.Resource)
}

func (e *BusyError) Unwrap() error {
	return ErrBusy
}
