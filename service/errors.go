package service

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the only failure the engine reports. Every *InputError
// unwraps to it.
var ErrInvalidInput = errors.New("invalid input")

// InputError describes the first field that failed validation.
type InputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s %q %s", ErrInvalidInput, e.Field, e.Value, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}
