package domain

import "errors"

// Validation errors surfaced before a session is allowed to start
var (
	ErrZeroWorkTime   = errors.New("work time cannot be zero")
	ErrZeroRestTime   = errors.New("rest time cannot be zero")
	ErrSetsOutOfRange = errors.New("sets must be between 1 and 99")
)
