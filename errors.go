package docgen

import (
	"errors"
	"fmt"
)

// Sentinel errors for common generation failure conditions.
var (
	ErrNoBackend      = errors.New("docgen: no rendering backend configured")
	ErrInvalidParam   = errors.New("docgen: invalid parameter")
	ErrTableColumns   = errors.New("docgen: table column count mismatch")
	ErrUnknownCommand = errors.New("docgen: unknown command")
	ErrNoImageData    = errors.New("docgen: image has no data")
)

// DocError represents an error that occurred during a specific generation
// operation. It wraps an underlying error and includes the operation name for
// context.
type DocError struct {
	Op  string // operation name, e.g. "Generate", "AddTable"
	Err error  // underlying error
}

func (e *DocError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("docgen.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("docgen.%s: unknown error", e.Op)
}

func (e *DocError) Unwrap() error {
	return e.Err
}

// newDocError creates a new DocError wrapping the given error with operation
// context.
func newDocError(op string, err error) *DocError {
	return &DocError{Op: op, Err: err}
}
