package schedulers

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrComputation  = errors.New("computation error")
)

// InvalidInputError rejects a process set before any scheduling starts.
// ProcessID is empty when the reason concerns the whole set.
type InvalidInputError struct {
	Reason    string
	ProcessID string
}

func (e *InvalidInputError) Error() string {
	if e.ProcessID == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidInput, e.Reason)
	}
	return fmt.Sprintf("%s: process %q: %s", ErrInvalidInput, e.ProcessID, e.Reason)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// ComputationError reports a broken scheduling invariant.
type ComputationError struct {
	Reason string
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrComputation, e.Reason)
}

func (e *ComputationError) Unwrap() error {
	return ErrComputation
}

func invalidInput(pid, format string, args ...any) error {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...), ProcessID: pid}
}
