package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSprite is wrapped by StateError when an operation needs a sprite in progress.
	ErrNoSprite = errors.New("no sprite is set on builder")
	// ErrSpriteInProgress is wrapped by StateError when an operation is only legal before a fill.
	ErrSpriteInProgress = errors.New("a sprite is already being built")
)

// ParseError represents a decoding failure (YAML documents, hex colors) with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StateError reports an operation invoked while the builder is in the wrong stage.
type StateError struct {
	Operation string
	Err       error
}

// NewStateError constructs a StateError for the named operation.
func NewStateError(operation string, err error) error {
	return &StateError{Operation: operation, Err: err}
}

func (e *StateError) Error() string {
	if e == nil {
		return ""
	}
	if e.Operation != "" {
		return fmt.Sprintf("state error on %s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("state error: %v", e.Err)
}

// Unwrap exposes the sentinel describing the illegal state.
func (e *StateError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// BoundsError indicates pixel access outside a raster.
type BoundsError struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewBoundsError constructs a BoundsError for coordinate (x, y) on a width x height raster.
func NewBoundsError(x, y, width, height int) error {
	return &BoundsError{X: x, Y: y, Width: width, Height: height}
}

func (e *BoundsError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("index out of bounds [%d, %d] when actual dimension is [%d, %d]", e.X, e.Y, e.Width, e.Height)
}

// InvariantError marks a broken internal invariant. It signals a defect, never bad input.
type InvariantError struct {
	Message string
}

// NewInvariantError constructs an InvariantError.
func NewInvariantError(message string) error {
	return &InvariantError{Message: message}
}

func (e *InvariantError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("algorithm error: %s", e.Message)
}

// ExecutionError represents a failure while running a pipeline step.
type ExecutionError struct {
	StepID string
	Err    error
}

// NewExecutionError constructs an ExecutionError.
func NewExecutionError(stepID string, err error) error {
	return &ExecutionError{StepID: stepID, Err: err}
}

func (e *ExecutionError) Error() string {
	if e == nil {
		return ""
	}
	if e.StepID != "" {
		return fmt.Sprintf("execution error on step %s: %v", e.StepID, e.Err)
	}
	return fmt.Sprintf("execution error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *ExecutionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
