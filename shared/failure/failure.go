package failure

import (
	"errors"
	"net/http"
	"strconv"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

// Booking and waitlist outcomes surfaced to clients. Concurrency losses are
// retryable by re-querying availability; token failures are terminal for that
// token and deliberately vague about internals.
var SlotUnavailable = &Failure{Code: http.StatusConflict, Message: "the requested time slot is no longer available"}
var SlotNoLongerAvailable = &Failure{Code: http.StatusConflict, Message: "this slot is no longer available"}
var InvalidToken = &Failure{Code: http.StatusNotFound, Message: "this link is no longer available"}
var TokenExpired = &Failure{Code: http.StatusGone, Message: "this offer is no longer available"}
var EntryNotAvailable = &Failure{Code: http.StatusConflict, Message: "this offer is no longer available"}
var AlreadyTerminal = &Failure{Code: http.StatusConflict, Message: "this waitlist request is already closed"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName + " not found",
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// ClientBlocked reports a trust-policy veto together with the unblock date and
// reason so the caller can show the client exactly when booking resumes.
func ClientBlocked(blockedUntil, reason string) error {
	msg := "booking is temporarily blocked until " + blockedUntil
	if reason != "" {
		msg += ": " + reason
	}

	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// CancellationWindowViolation reports a policy veto with the required notice
// period and the hours actually remaining before the appointment.
func CancellationWindowViolation(requiredHours, remainingHours int) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Message: "cancellations require " + strconv.Itoa(requiredHours) + " hours of notice; only " + strconv.Itoa(remainingHours) + " remain",
	}
}

// ValidationError returns a new Failure for missing or malformed input.
func ValidationError(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
