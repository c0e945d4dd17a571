package models

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	ErrValidation   ErrorKind = "validation"
	ErrNotFound     ErrorKind = "not_found"
	ErrForbidden    ErrorKind = "forbidden"
	ErrInvalidState ErrorKind = "invalid_state"
	ErrConflict     ErrorKind = "conflict"
	ErrCapacity     ErrorKind = "capacity"
	ErrInternal     ErrorKind = "internal"
)

// Error is the application error surfaced to API clients: a machine status
// plus a user-visible message.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func ValidationError(format string, args ...any) *Error {
	return newError(ErrValidation, format, args...)
}

func NotFoundError(format string, args ...any) *Error {
	return newError(ErrNotFound, format, args...)
}

func ForbiddenError(format string, args ...any) *Error {
	return newError(ErrForbidden, format, args...)
}

func InvalidStateError(format string, args ...any) *Error {
	return newError(ErrInvalidState, format, args...)
}

func ConflictError(format string, args ...any) *Error {
	return newError(ErrConflict, format, args...)
}

func CapacityError(format string, args ...any) *Error {
	return newError(ErrCapacity, format, args...)
}

// KindOf extracts the error kind, defaulting to ErrInternal for unexpected
// failures (store errors and the like).
func KindOf(err error) ErrorKind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ErrInternal
}

func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
