package attendance

import "errors"

// Attendance domain errors
var (
	// Clock-in errors
	ErrAlreadyClockedIn = errors.New("an open session already exists for this employee")

	// Clock-out errors
	ErrNotClockedIn = errors.New("no open session found for this employee")
)
