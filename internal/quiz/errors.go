package quiz

import (
	"errors"
	"fmt"
)

// ErrBusy is returned for any intent issued while a generator, advisor or
// storage call is outstanding.
var ErrBusy = errors.New("quiz: another operation is in progress")

// GenerationError means no usable question set could be obtained.
// The machine is back in PhaseIdle and Start may be retried.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate questions: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// ValidationError is a caller contract violation, such as answering with a
// choice that is not an option or advancing without an answer.
type ValidationError struct {
	Op     string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("quiz %s: %s", e.Op, e.Reason)
}

func invalid(op, format string, args ...any) error {
	return &ValidationError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
