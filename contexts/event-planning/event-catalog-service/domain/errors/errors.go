package errors

import "errors"

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrEventTypeNotFound  = errors.New("event type not found")
	ErrDuplicateEventType = errors.New("duplicate event type id")
)
