package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/gx1727/mi7site/pkg/errors"
)

// Validate checks every field of cfg against its constraints.
func Validate(cfg *Config) error {
	if cfg == nil {
		return apperrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}

// convertValidationError normalizes validator errors into validation errors
// keyed by the YAML field name.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		msg := fmt.Sprintf("%s failed validation for tag '%s'", ve.Field(), ve.Tag())
		if ve.Param() != "" {
			msg = fmt.Sprintf("%s failed validation for tag '%s=%s'", ve.Field(), ve.Tag(), ve.Param())
		}
		return apperrors.NewValidationError(ve.Field(), msg, err)
	}

	return apperrors.NewValidationError("config", err.Error(), err)
}
