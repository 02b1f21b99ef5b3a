package errs

import (
	"errors"
	"fmt"
)

var ErrStaleState = errors.New("state is stale")

// StaleStateError is returned when a compare-and-swap write finds that another
// transaction already changed the record.
type StaleStateError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewStaleStateErrorWithCause(paramName string, id any, cause error) *StaleStateError {
	return &StaleStateError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func NewStaleStateError(paramName string, id any) *StaleStateError {
	return &StaleStateError{
		ParamName: paramName,
		ID:        id,
	}
}

func (e *StaleStateError) Error() string {
	msg := fmt.Sprintf("%s: %s %v was modified concurrently", ErrStaleState, e.ParamName, e.ID)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *StaleStateError) Unwrap() error {
	return ErrStaleState
}
