package entity

import "errors"

// Domain error taxonomy. Usecases return errors built with the constructors
// below; the HTTP layer maps the sentinel kinds to status codes via errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("validation failed")
)

type domainError struct {
	kind error
	msg  string
}

func (e *domainError) Error() string { return e.msg }

func (e *domainError) Unwrap() error { return e.kind }

func NotFound(msg string) error { return &domainError{kind: ErrNotFound, msg: msg} }

func Unauthorized(msg string) error { return &domainError{kind: ErrUnauthorized, msg: msg} }

func Forbidden(msg string) error { return &domainError{kind: ErrForbidden, msg: msg} }

func Validation(msg string) error { return &domainError{kind: ErrValidation, msg: msg} }
