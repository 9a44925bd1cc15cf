package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/spritegen/pkg/color"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	slugPattern   = regexp.MustCompile(`^[a-z0-9_-]+$`)
	stepTypes     = map[string]struct{}{StepBorder: {}, StepEdges: {}, StepPadding: {}, StepTransform: {}}
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("step_type", func(fl validator.FieldLevel) bool {
			_, ok := stepTypes[fl.Field().String()]
			return ok
		})

		_ = v.RegisterValidation("argb_hex", func(fl validator.FieldLevel) bool {
			_, err := color.FromHexa(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}
