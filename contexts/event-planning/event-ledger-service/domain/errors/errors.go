package errors

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound          = errors.New("event not found")
	ErrInvalidEventInput      = errors.New("invalid event input")
	ErrTransitionRejected     = errors.New("transition rejected by status guard")
	ErrIdempotencyKeyRequired = errors.New("idempotency key is required")
	ErrIdempotencyKeyConflict = errors.New("idempotency key conflict")
)

// TransitionError reports which action was attempted against which current
// status. It matches ErrTransitionRejected under errors.Is so transport
// code can map every guard violation the same way.
type TransitionError struct {
	Action string
	Status string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s event in status %q", e.Action, e.Status)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrTransitionRejected
}

func RejectTransition(action string, status string) error {
	return &TransitionError{Action: action, Status: status}
}
