package apperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

// Error maps a failure onto the HTTP status the boundary should report.
type Error struct {
	Code int
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error {
	return &Error{Code: http.StatusBadRequest, Msg: msg}
}

func PermissionDenied(msg string) *Error {
	return &Error{Code: http.StatusForbidden, Msg: msg}
}

func NotFound(msg string) *Error {
	return &Error{Code: http.StatusNotFound, Msg: msg}
}

func EmptyCart() *Error {
	return &Error{Code: http.StatusBadRequest, Msg: "failed to create order - empty cart"}
}

func Transient(err error) *Error {
	return &Error{Code: http.StatusServiceUnavailable, Msg: "store temporarily unavailable", Err: err}
}

func Internal(err error) *Error {
	return &Error{Code: http.StatusInternalServerError, Msg: "internal server error", Err: err}
}

// FromStore classifies an error coming back from the persistence layer.
// notFoundMsg names the entity for the 404 case.
func FromStore(err error, notFoundMsg string) *Error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound(notFoundMsg)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return Transient(err)
	default:
		return Internal(err)
	}
}

// StatusOf resolves any error to the (status, detail) pair for the response.
func StatusOf(err error) (int, string) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, e.Msg
	}
	return http.StatusInternalServerError, "internal server error"
}
