// Package validate holds the precondition checks shared by the color, sprite
// and builder packages. Every check returns a *errors.ValidationError naming
// the offending field and value, or nil.
package validate

import (
	"fmt"
	"math"
	"strconv"

	spriteerrors "github.com/alexisbeaulieu97/spritegen/pkg/errors"
)

// Integer fails when value has a fractional part or is not finite.
func Integer(value float64, name string) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value != math.Trunc(value) {
		return failure(name, "integer", value)
	}
	return nil
}

// NonNegative fails when value < 0.
func NonNegative(value float64, name string) error {
	if math.IsNaN(value) || value < 0 {
		return failure(name, "non-negative value", value)
	}
	return nil
}

// Positive fails when value <= 0.
func Positive(value float64, name string) error {
	if math.IsNaN(value) || value <= 0 {
		return failure(name, "positive non-zero value", value)
	}
	return nil
}

// Percentage fails when value is outside [0, 1].
func Percentage(value float64, name string) error {
	if math.IsNaN(value) || value < 0 || value > 1 {
		return failure(name, "percentage value", value)
	}
	return nil
}

// NonNegativeInteger combines Integer and NonNegative.
func NonNegativeInteger(value float64, name string) error {
	if err := Integer(value, name); err != nil {
		return err
	}
	return NonNegative(value, name)
}

// PositiveInteger combines Integer and Positive.
func PositiveInteger(value float64, name string) error {
	if err := Integer(value, name); err != nil {
		return err
	}
	return Positive(value, name)
}

// Dimensions checks that width and height are positive, using name[0] and name[1] as field names.
func Dimensions(width, height int, name string) error {
	if err := Positive(float64(width), fmt.Sprintf("%s[0]", name)); err != nil {
		return err
	}
	return Positive(float64(height), fmt.Sprintf("%s[1]", name))
}

func failure(name, expected string, value float64) error {
	found := strconv.FormatFloat(value, 'g', -1, 64)
	return spriteerrors.NewValidationError(name, fmt.Sprintf("expected %s but found %s", expected, found), nil)
}
