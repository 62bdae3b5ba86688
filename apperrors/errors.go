package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is an application error carrying the HTTP status code it should be
// reported with.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation reports malformed input caught before any side effect.
func Validation(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

// Unauthorized reports a missing or invalid credential. The message never
// distinguishes an expired token from a forged one.
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message, nil)
}

// NotFound reports a referenced entity that does not exist.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message, nil)
}

// Conflict reports a uniqueness violation (duplicate registration).
func Conflict(message string) *Error {
	return New(http.StatusConflict, message, nil)
}

// Database wraps a statement or transaction failure. Callers must assume the
// operation did not happen, even when the commit outcome is indeterminate.
func Database(message string, err error) *Error {
	return New(http.StatusInternalServerError, message, err)
}

// Respond writes err as a JSON response. Non-application errors are reported
// as a generic 500 without leaking the underlying message.
func Respond(c *gin.Context, err error) {
	var appErr *Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
