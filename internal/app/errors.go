// Package app holds the error type shared by the venue, artist and show
// controllers.
package app

import (
	"errors"
	"fmt"

	"fyyur/internal/forms"
	"fyyur/internal/store"
)

// Op names the controller operation that failed.
type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
	OpGet    Op = "get"
	OpList   Op = "list"
	OpSearch Op = "search"
)

// Kind classifies a failure for the HTTP layer.
type Kind int

const (
	KindPersistence Kind = iota
	KindNotFound
	KindValidation
	KindConstraint
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation_failed"
	case KindConstraint:
		return "constraint_violation"
	default:
		return "persistence_failure"
	}
}

// Error is returned by every controller operation that fails.
type Error struct {
	Op   Op
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s failed (%s): %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap classifies err and tags it with op. A nil err stays nil; an err that
// is already an *Error keeps its kind.
func Wrap(op Op, err error) error {
	if err == nil {
		return nil
	}
	var existing *Error
	if errors.As(err, &existing) {
		return &Error{Op: op, Kind: existing.Kind, Err: existing.Err}
	}
	return &Error{Op: op, Kind: classify(err), Err: err}
}

func classify(err error) Kind {
	var invalid *forms.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		return KindNotFound
	case errors.As(err, &invalid):
		return KindValidation
	case errors.Is(err, store.ErrConstraint):
		return KindConstraint
	default:
		return KindPersistence
	}
}

// KindOf reports the kind of err, treating untagged errors as persistence
// failures.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return classify(err)
}

// IsNotFound reports whether err denotes a missing record.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
