package config

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	spriteerrors "github.com/alexisbeaulieu97/spritegen/pkg/errors"
)

// convertValidationError normalizes validator errors into sprite validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return spriteerrors.NewValidationError(field, msg, err)
	}

	return spriteerrors.NewValidationError("config", err.Error(), err)
}

// convertStepValidationError is convertValidationError with the field scoped to steps[index].
func convertStepValidationError(index int, err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := fieldForStep(index, yamlishFieldName(ve))
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return spriteerrors.NewValidationError(field, msg, err)
	}
	return convertValidationError(err)
}

// yamlishFieldName turns a struct namespace such as Config.Sprite.BlankColor
// into the key path a document author wrote, sprite.blank_color.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, snakeCase(part))
	}
	return strings.Join(lowered, ".")
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 && s[i-1] != '[' {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func fieldForStep(index int, field string) string {
	return fmt.Sprintf("steps[%d].%s", index, field)
}

func fieldForSprite(field string) string {
	return "sprite." + field
}
