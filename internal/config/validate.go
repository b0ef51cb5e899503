package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("mind", validateMinDuration)
}

// validateMinDuration enforces a lower bound on time.Duration fields,
// e.g. `validate:"mind=1s"`.
func validateMinDuration(fl validator.FieldLevel) bool {
	floor, err := time.ParseDuration(fl.Param())
	if err != nil {
		return false
	}

	d, ok := fl.Field().Interface().(time.Duration)
	if !ok {
		return false
	}

	return d >= floor
}

// Validate checks the parsed configuration. A failure here is fatal at
// startup: the process must not come up half-configured.
func (c *Config) Validate() error {
	v := validator.New()
	RegisterValidators(v)

	if err := v.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			e := errs[0]
			return fmt.Errorf("invalid config: field %s failed on %q (value %v)", e.Field(), e.Tag(), e.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}
