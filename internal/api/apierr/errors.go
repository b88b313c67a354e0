package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tesouraclub/tesoura-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidDate        = "INVALID_DATE"
	CodeInvalidHandle      = "INVALID_HANDLE"
	CodeInvalidTime        = "INVALID_TIME"
	CodeInvalidHalf        = "INVALID_HALF"
	CodeInvalidPanel       = "INVALID_PANEL"
	CodeInvalidPeriod      = "INVALID_PERIOD"
	CodeDuplicateCheckIn   = "DUPLICATE_CHECKIN"
	CodeAttendanceNotFound = "ATTENDANCE_NOT_FOUND"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodePlayerExists       = "PLAYER_EXISTS"
	CodeLineupNotFound     = "LINEUP_NOT_FOUND"
	CodePaymentNotFound    = "PAYMENT_NOT_FOUND"
	CodeSnapshotNotFound   = "SNAPSHOT_NOT_FOUND"
	CodeRosterUnavailable  = "ROSTER_UNAVAILABLE"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrInvalidDate):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDate, "Date must be YYYY-MM-DD"}}
	case errors.Is(err, model.ErrInvalidHandle):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidHandle, "Invalid player handle"}}
	case errors.Is(err, model.ErrInvalidTime):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidTime, "Arrival time must be HH:MM"}}
	case errors.Is(err, model.ErrInvalidHalf):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidHalf, "Half must be first or second"}}
	case errors.Is(err, model.ErrInvalidPanel):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPanel, "Unknown archive panel"}}
	case errors.Is(err, model.ErrInvalidPeriod):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPeriod, "Period must be YYYY-MM"}}
	case errors.Is(err, model.ErrDuplicateCheckIn):
		return &httpError{http.StatusConflict, APIError{CodeDuplicateCheckIn, "Player is already checked in for this date"}}
	case errors.Is(err, model.ErrPlayerExists):
		return &httpError{http.StatusConflict, APIError{CodePlayerExists, "Handle is already registered"}}
	case errors.Is(err, model.ErrAttendanceNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeAttendanceNotFound, "Player is not checked in for this date"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrLineupNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeLineupNotFound, "No lineup stored for this date and half"}}
	case errors.Is(err, model.ErrPaymentNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePaymentNotFound, "No payment recorded"}}
	case errors.Is(err, model.ErrSnapshotNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSnapshotNotFound, "Snapshot not found"}}
	case errors.Is(err, model.ErrRosterUnavailable):
		return &httpError{http.StatusBadGateway, APIError{CodeRosterUnavailable, "Player directory is unavailable"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
