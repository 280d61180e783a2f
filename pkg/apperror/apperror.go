package apperror

import (
	"fmt"
	"net/http"
)

// AppError carries an HTTP status, a user-facing message, and optionally
// per-field messages for validation failures. Handlers attach it to the
// gin context and the error handler middleware renders it.
type AppError struct {
	Code    int
	Message string
	Fields  map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with the given status and message.
func New(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// BadRequest marks a request the server could not parse or accept.
func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Validation wraps per-field messages from a failed form validation.
func Validation(fields map[string]string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: "Please correct the highlighted fields.",
		Fields:  fields,
	}
}

// ServiceUnavailable marks a dependency that is not configured or ready.
func ServiceUnavailable(message string) *AppError {
	return New(http.StatusServiceUnavailable, message, nil)
}

// BadGateway marks an upstream call that failed.
func BadGateway(message string, err error) *AppError {
	return New(http.StatusBadGateway, message, err)
}

// Internal marks an unexpected server-side failure.
func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Something went wrong. Please try again.", err)
}
