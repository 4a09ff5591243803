// Package apperr defines the error classes surfaced to callers.
// Errors are plain wrapped errors; classify them with errors.Is against the
// sentinels below.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed or missing input rejected before storage.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a target that does not exist or is not owned by the caller.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a uniqueness violation.
	ErrConflict = errors.New("conflict")
)

type classified struct {
	class error
	msg   string
}

func (e *classified) Error() string { return e.msg }

func (e *classified) Unwrap() error { return e.class }

// Validation returns an ErrValidation with the formatted message.
func Validation(format string, args ...any) error {
	return &classified{class: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

// NotFound returns an ErrNotFound for the given entity. The message is the
// same whether the row is missing or owned by someone else.
func NotFound(entity string, id any) error {
	return &classified{class: ErrNotFound, msg: fmt.Sprintf("%s %v not found", entity, id)}
}

// Conflict returns an ErrConflict with the formatted message.
func Conflict(format string, args ...any) error {
	return &classified{class: ErrConflict, msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsNotFound reports whether err is a not-found failure.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConflict reports whether err is a uniqueness conflict.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }
