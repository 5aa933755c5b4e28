package attendance

import "errors"

// Attendance domain errors
var (
	// Check pipeline errors
	ErrLocationUnverified = errors.New("cannot verify your location")
	ErrOutsideGeofence    = errors.New("you are outside the office area")
	ErrStaleSessionOpen   = errors.New("an unclosed session from a previous day is pending")

	// General errors
	ErrStateNotFound = errors.New("attendance state not found")
)
