package model

import "errors"

// Common errors used across the application
var (
	// Validation errors
	ErrInvalidDate   = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidHandle = errors.New("invalid player handle")
	ErrInvalidTime   = errors.New("invalid arrival time, expected HH:MM")
	ErrInvalidHalf   = errors.New("invalid half, expected first or second")
	ErrInvalidPanel  = errors.New("invalid panel name")
	ErrInvalidPeriod = errors.New("invalid billing period, expected YYYY-MM")

	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrPlayerExists   = errors.New("player already exists")

	// Attendance errors
	ErrDuplicateCheckIn   = errors.New("player already checked in for this date")
	ErrAttendanceNotFound = errors.New("no attendance record for this player and date")

	// Lineup errors
	ErrLineupNotFound = errors.New("no lineup computed for this date and half")

	// Payment errors
	ErrPaymentNotFound = errors.New("payment record not found")

	// Snapshot errors
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// Collaborator errors
	ErrRosterUnavailable = errors.New("player directory could not be read")
)
