package blocker

import "errors"

// Blocker domain errors
var (
	ErrBlockerNotFound = errors.New("timesheet blocker not found")
	ErrInvalidRange    = errors.New("blockedFrom must not be after blockedTo")
)
