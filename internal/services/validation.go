package services

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var clockTime = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// newValidator returns a validator that reports JSON field names and knows the
// nonblank and hhmm tags.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return clockTime.MatchString(fl.Field().String())
	})
	return v
}

// validateStruct runs v over s and turns the first failure into a client-facing
// validation error naming the field.
func validateStruct(v *validator.Validate, s interface{}) error {
	return validateInput(v, s, nil)
}

// validateInput is validateStruct, except that a missing required field is
// reported as missing when it is non-nil.
func validateInput(v *validator.Validate, s interface{}, missing error) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("failed to validate input: %w", err)
	}
	first := fieldErrs[0]
	if missing != nil && (first.Tag() == "required" || first.Tag() == "nonblank") {
		return missing
	}
	return newError(ErrValidation, fieldMessage(first))
}

// normalizeEmail is the form emails are stored and looked up in.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "nonblank":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", e.Field())
	case "hhmm":
		return fmt.Sprintf("%s must be in HH:MM format", e.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", e.Field(), strings.ReplaceAll(e.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
