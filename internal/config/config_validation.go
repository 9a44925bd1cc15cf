package config

import (
	"fmt"

	spriteerrors "github.com/alexisbeaulieu97/spritegen/pkg/errors"
	"github.com/alexisbeaulieu97/spritegen/pkg/validate"
)

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return spriteerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if err := validateSprite(cfg.Sprite); err != nil {
		return err
	}

	for i, step := range cfg.Steps {
		if err := ValidateStep(i, step); err != nil {
			return err
		}
	}

	return nil
}

func validateSprite(s Sprite) error {
	for i, d := range s.Dimensions {
		if err := validate.PositiveInteger(d, fieldForSprite(fmt.Sprintf("dimensions[%d]", i))); err != nil {
			return err
		}
	}

	if s.BlankPercentage != nil {
		if err := validate.Percentage(*s.BlankPercentage, fieldForSprite("blank_percentage")); err != nil {
			return err
		}
	}

	if len(s.Palette) > 0 && s.RandomPalette != nil {
		return spriteerrors.NewValidationError(fieldForSprite("palette"), "palette and random_palette are mutually exclusive", nil)
	}

	return validateBorder(s.Border, fieldForSprite("border"))
}

func validateBorder(b Border, field string) error {
	if !b.IsSet() {
		return nil
	}

	if len(b.Sides) != 4 {
		return spriteerrors.NewValidationError(field, fmt.Sprintf("expected 1 or 4 widths but found %d", len(b.Sides)), nil)
	}

	for i, side := range b.Sides {
		if err := validate.NonNegativeInteger(side, fmt.Sprintf("%s[%d]", field, i)); err != nil {
			return err
		}
	}

	return nil
}
