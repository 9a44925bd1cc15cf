package config

import (
	"fmt"

	spriteerrors "github.com/alexisbeaulieu97/spritegen/pkg/errors"
	"github.com/alexisbeaulieu97/spritegen/pkg/validate"
)

// ValidateStep inspects a single step for structural correctness independent of other steps.
func ValidateStep(index int, step Step) error {
	v := validatorInstance()
	if err := v.Struct(step); err != nil {
		return convertStepValidationError(index, err)
	}

	switch step.Type {
	case StepBorder:
		if step.Border == nil {
			return spriteerrors.NewValidationError(fieldForStep(index, "type"), "border configuration is required", nil)
		}
		if err := v.Struct(step.Border); err != nil {
			return convertStepValidationError(index, err)
		}
		if err := validateBorder(step.Border.Border, fieldForStep(index, "border")); err != nil {
			return err
		}
	case StepEdges:
		if step.Edges == nil {
			return spriteerrors.NewValidationError(fieldForStep(index, "type"), "edges configuration is required", nil)
		}
		if err := v.Struct(step.Edges); err != nil {
			return convertStepValidationError(index, err)
		}
		if step.Edges.Weight != nil {
			if err := validate.Percentage(*step.Edges.Weight, fieldForStep(index, "weight")); err != nil {
				return err
			}
		}
	case StepPadding:
		if step.Padding == nil {
			return spriteerrors.NewValidationError(fieldForStep(index, "type"), "padding configuration is required", nil)
		}
		if err := v.Struct(step.Padding); err != nil {
			return convertStepValidationError(index, err)
		}
		for i, d := range step.Padding.Dimensions {
			if err := validate.PositiveInteger(d, fieldForStep(index, fmt.Sprintf("dimensions[%d]", i))); err != nil {
				return err
			}
		}
	case StepTransform:
		if step.Transform == nil {
			return spriteerrors.NewValidationError(fieldForStep(index, "type"), "transform configuration is required", nil)
		}
		if err := v.Struct(step.Transform); err != nil {
			return convertStepValidationError(index, err)
		}
	default:
		return spriteerrors.NewValidationError(fieldForStep(index, "type"), fmt.Sprintf("unknown step type %q", step.Type), nil)
	}

	return nil
}
