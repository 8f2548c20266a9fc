// Package apperror defines the error kinds returned by the domain services.
// Controllers render them through helper.FromAppError.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	Internal Kind = iota
	InvalidInput
	Unauthorized
	Forbidden
	NotFound
	Conflict
	InvalidState
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "INVALID_INPUT"
	case Unauthorized:
		return "UNAUTHORIZED"
	case Forbidden:
		return "FORBIDDEN"
	case NotFound:
		return "NOT_FOUND"
	case Conflict:
		return "CONFLICT"
	case InvalidState:
		return "INVALID_STATE"
	default:
		return "INTERNAL_ERROR"
	}
}

// HTTPStatus maps a kind to the status code used in responses.
func (k Kind) HTTPStatus() int {
	switch k {
	case InvalidInput, InvalidState:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap keeps err as the cause. For Internal errors the cause message is
// appended so the response carries the underlying store message.
func Wrap(kind Kind, err error, message string) *Error {
	msg := message
	if kind == Internal && err != nil {
		msg = message + ": " + err.Error()
	}
	return &Error{Kind: kind, Message: msg, Err: err}
}

func Invalid(format string, args ...any) *Error   { return New(InvalidInput, format, args...) }
func NotFoundf(format string, args ...any) *Error { return New(NotFound, format, args...) }
func Conflictf(format string, args ...any) *Error { return New(Conflict, format, args...) }

// KindOf reports the kind of err, Internal when err carries no *Error.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return Internal
}

// Is reports whether err carries an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}
