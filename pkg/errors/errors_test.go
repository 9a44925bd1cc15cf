package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("sprites.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "sprites.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: sprites.yaml:12: unexpected token", err.Error())
}

func TestValidationErrorNamesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("border[1]", "expected integer but found 2.5", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "border[1]", validationErr.Field)
	require.Equal(t, "validation error: border[1]: expected integer but found 2.5", err.Error())

	anonymous := NewValidationError("", "configuration is nil", nil)
	require.Equal(t, "validation error: configuration is nil", anonymous.Error())
}

func TestStateErrorWrapsSentinel(t *testing.T) {
	t.Parallel()

	err := NewStateError("build", ErrNoSprite)

	var stateErr *StateError
	require.ErrorAs(t, err, &stateErr)
	require.Equal(t, "build", stateErr.Operation)
	require.ErrorIs(t, err, ErrNoSprite)
	require.NotErrorIs(t, err, ErrSpriteInProgress)
	require.Contains(t, err.Error(), "no sprite is set on builder")
}

func TestBoundsErrorNamesCoordinateAndDimension(t *testing.T) {
	t.Parallel()

	err := NewBoundsError(7, 2, 7, 9)

	var boundsErr *BoundsError
	require.ErrorAs(t, err, &boundsErr)
	require.Equal(t, 7, boundsErr.X)
	require.Equal(t, "index out of bounds [7, 2] when actual dimension is [7, 9]", err.Error())
}

func TestInvariantErrorMessage(t *testing.T) {
	t.Parallel()

	err := NewInvariantError("stack underflow")
	require.Equal(t, "algorithm error: stack underflow", err.Error())
}

func TestExecutionErrorIncludesStepContext(t *testing.T) {
	t.Parallel()

	err := NewExecutionError("padding#2", NewStateError("padding", ErrNoSprite))

	var executionErr *ExecutionError
	require.ErrorAs(t, err, &executionErr)
	require.Equal(t, "padding#2", executionErr.StepID)
	require.ErrorIs(t, err, ErrNoSprite)
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var stateErr *StateError
	var boundsErr *BoundsError
	var invariantErr *InvariantError
	var executionErr *ExecutionError

	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, validationErr.Error())
	require.Empty(t, stateErr.Error())
	require.Nil(t, stateErr.Unwrap())
	require.Empty(t, boundsErr.Error())
	require.Empty(t, invariantErr.Error())
	require.Nil(t, executionErr.Unwrap())
}
