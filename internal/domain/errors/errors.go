package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("order already completed or cancelled")
	ErrNoDriverAvailable = errors.New("no available drivers")
)

// MissingFieldError reports the first required field absent from a request.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %s", e.Field)
}

// NewMissingField constructs MissingFieldError for the named field.
func NewMissingField(field string) error {
	return MissingFieldError{Field: field}
}
