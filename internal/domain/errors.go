package domain

import "errors"

// ErrNotFound is returned when a referenced product does not exist or is no longer active.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when an authenticated caller lacks the privileges for an operation.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidBehaviorType is returned when a behavior type is empty or longer than MaxBehaviorTypeLength.
var ErrInvalidBehaviorType = errors.New("invalid behavior type")
