package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies a failure for the client.
type Kind int

const (
	KindStore Kind = iota
	KindValidation
	KindConflict
	KindAuth
	KindNotFound
	KindOutOfStock
	KindAlreadyCancelled
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindOutOfStock:
		return "out_of_stock"
	case KindAlreadyCancelled:
		return "already_cancelled"
	default:
		return "store"
	}
}

// HTTPStatus returns the response status used for the kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation, KindConflict, KindAuth, KindOutOfStock, KindAlreadyCancelled:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is a failure whose Message is safe to return to the client.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the kind of err. Errors that are not *Error are store failures.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStore
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
