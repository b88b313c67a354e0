package handler

import (
	"net/http"

	"github.com/tesouraclub/tesoura-go/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest     = apierr.CodeInvalidRequest
	CodeInvalidDate        = apierr.CodeInvalidDate
	CodeInvalidHandle      = apierr.CodeInvalidHandle
	CodeInvalidTime        = apierr.CodeInvalidTime
	CodeInvalidHalf        = apierr.CodeInvalidHalf
	CodeInvalidPanel       = apierr.CodeInvalidPanel
	CodeInvalidPeriod      = apierr.CodeInvalidPeriod
	CodeDuplicateCheckIn   = apierr.CodeDuplicateCheckIn
	CodeAttendanceNotFound = apierr.CodeAttendanceNotFound
	CodePlayerNotFound     = apierr.CodePlayerNotFound
	CodePlayerExists       = apierr.CodePlayerExists
	CodeLineupNotFound     = apierr.CodeLineupNotFound
	CodePaymentNotFound    = apierr.CodePaymentNotFound
	CodeSnapshotNotFound   = apierr.CodeSnapshotNotFound
	CodeRosterUnavailable  = apierr.CodeRosterUnavailable
	CodeInternalError      = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
