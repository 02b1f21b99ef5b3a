package errs

import (
	"errors"
	"fmt"
)

var ErrInvalidTransition = errors.New("transition is invalid")

// InvalidTransitionError reports a requested status change that is not a legal
// edge for the acting role. From and To are the rendered status names.
type InvalidTransitionError struct {
	From  string
	To    string
	Actor string
	Cause error
}

func NewInvalidTransitionErrorWithCause(from, to, actor string, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{
		From:  from,
		To:    to,
		Actor: actor,
		Cause: cause,
	}
}

func NewInvalidTransitionError(from, to, actor string) *InvalidTransitionError {
	return &InvalidTransitionError{
		From:  from,
		To:    to,
		Actor: actor,
	}
}

func (e *InvalidTransitionError) Error() string {
	msg := fmt.Sprintf("%s: %s -> %s by %s", ErrInvalidTransition, e.From, e.To, e.Actor)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
