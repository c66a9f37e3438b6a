package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	granularerrors "github.com/alexisbeaulieu97/granular/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// validatorInstance configures and returns the shared validator instance
// used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		// Terminal colours are either hex or an ANSI 256 palette index.
		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if hexColorPattern.MatchString(value) {
				return true
			}
			n, err := strconv.Atoi(value)
			return err == nil && n >= 0 && n <= 255
		})

		_ = v.RegisterValidation("minute_step", func(fl validator.FieldLevel) bool {
			step := int(fl.Field().Int())
			return step >= 1 && step <= 30 && 60%step == 0
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the
// configuration. Defaults are expected to be applied already.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return granularerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.Date.MaxYear < cfg.Date.MinYear {
		return granularerrors.NewValidationError("date.max_year",
			fmt.Sprintf("%d is before min_year %d", cfg.Date.MaxYear, cfg.Date.MinYear), nil)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return granularerrors.NewValidationError(field, msg, err)
	}

	return granularerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName turns "Config.theme.date_styles.day_text.foreground"
// into "theme.date_styles.day_text.foreground".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	kept := make([]string, 0, len(parts))
	for i, part := range parts {
		if i == 0 || part == "" || part == "Colors" {
			continue
		}
		kept = append(kept, part)
	}
	return strings.Join(kept, ".")
}
