package errors

import "errors"

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrUnknownRole        = errors.New("unknown role")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrAuthUnavailable    = errors.New("authentication service unavailable")
)
