package entities

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidState     = errors.New("invalid state")
	ErrConflict         = errors.New("conflict")
	ErrPermissionDenied = errors.New("permission denied")

	// ErrGeocoderUnavailable is returned by location resolution when no
	// reverse geocoder is configured.
	ErrGeocoderUnavailable = errors.New("geocoder unavailable")
)

// Error is a domain error naming the offending field. It unwraps to one of the
// sentinel kinds above, so callers match it with errors.Is.
type Error struct {
	Kind   error
	Field  string
	Reason string
}

func (e *Error) Error() string {
	switch {
	case e.Field == "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	case e.Reason == "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Field)
	default:
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Reason)
	}
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func NewNotFoundError(field string, id any) *Error {
	return &Error{Kind: ErrNotFound, Field: field, Reason: fmt.Sprintf("%v does not exist", id)}
}

func NewInvalidArgumentError(field, reason string) *Error {
	return &Error{Kind: ErrInvalidArgument, Field: field, Reason: reason}
}

func NewInvalidStateError(field, reason string) *Error {
	return &Error{Kind: ErrInvalidState, Field: field, Reason: reason}
}

func NewConflictError(field, reason string) *Error {
	return &Error{Kind: ErrConflict, Field: field, Reason: reason}
}

func NewPermissionDeniedError(reason string) *Error {
	return &Error{Kind: ErrPermissionDenied, Reason: reason}
}

// FieldOf returns the field named by a domain error anywhere in the chain.
func FieldOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}
