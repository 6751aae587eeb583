package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrDuplicateDate      = errors.New("attendance already recorded for this date")
	ErrDateNotEditable    = errors.New("this date can no longer be edited")
	ErrUnauthorized       = errors.New("unauthorized to access this attendance record")
)
