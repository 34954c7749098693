package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an error into the four response categories the API
// produces: validation (400), not found (404), auth (401), everything
// else (500).
type Kind int

const (
	Internal Kind = iota
	Validation
	NotFound
	Auth
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a cause to a classified error. The cause is never shown
// to clients in production.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// From classifies an arbitrary error. Unclassified errors become 500s
// with their own text as the message.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: Internal, Message: err.Error(), Err: err}
}

// Status maps a Kind to its transport status code.
func (k Kind) Status() int {
	switch k {
	case Validation:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Auth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// StatusOf returns the transport status for any error value.
func StatusOf(err error) int {
	return From(err).Kind.Status()
}

// MessageOf returns the client-facing message for any error value.
func MessageOf(err error) string {
	return From(err).Message
}
