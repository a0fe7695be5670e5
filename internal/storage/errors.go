package storage

import "errors"

// ErrWorkoutNotFound is returned when an operation targets a workout id that
// does not exist. Handlers translate this into a 404.
var ErrWorkoutNotFound = errors.New("workout not found")
