package services

import "errors"

// Sentinel errors classifying service failures. Handlers map these onto HTTP
// statuses; anything unclassified is an internal store failure and stays
// opaque to the caller.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrDuplicate  = errors.New("already exists")
	ErrForbidden  = errors.New("not authorized")
)
