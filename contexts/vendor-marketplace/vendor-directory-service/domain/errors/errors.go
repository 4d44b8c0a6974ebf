package errors

import "errors"

var (
	ErrInvalidVendorInput = errors.New("invalid vendor input")
	ErrVendorNotFound     = errors.New("vendor not found")
	ErrInvalidVendorType  = errors.New("invalid vendor type")
)
