package feedback

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a registration request is rejected.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes which field of a request was rejected and why.
type ArgumentError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s=%v: %s", e.Field, e.Value, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func invalid(field string, value any, reason string) error {
	return &ArgumentError{Field: field, Value: value, Reason: reason}
}
