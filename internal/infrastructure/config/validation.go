package config

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	validatorV10 "github.com/go-playground/validator/v10"

	"github.com/bnema/zoomlevels/internal/domain/entity"
)

var validator = newValidator()

func newValidator() *validatorV10.Validate {
	v := validatorV10.New(validatorV10.WithRequiredStructEnabled())

	// Report keys the way they are written in config.toml.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("mapstructure"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "finite", func(fl validatorV10.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	mustRegister(v, "profile_name", func(fl validatorV10.FieldLevel) bool {
		return entity.ValidateProfileName(fl.Field().String()) == nil
	})
	return v
}

func mustRegister(v *validatorV10.Validate, tag string, fn validatorV10.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("config: register %s validation: %v", tag, err))
	}
}

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateTags(config)...)
	validationErrors = append(validationErrors, validateViewportBounds(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

// Validate checks a configuration that did not come through Load.
func Validate(config *Config) error {
	return validateConfig(config)
}

func validateTags(config *Config) []string {
	err := validator.Struct(config)
	if err == nil {
		return nil
	}

	var fieldErrors validatorV10.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, fmt.Sprintf("%s %s (got %v)", fieldKey(fe), validationMessage(fe), fe.Value()))
	}
	return messages
}

// fieldKey turns "Config.viewport.image_width" into "viewport.image_width".
func fieldKey(fe validatorV10.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func validationMessage(fe validatorV10.FieldError) string {
	switch fe.Tag() {
	case "finite":
		return "must be a finite number"
	case "profile_name":
		return "must be 1-64 characters of [a-z0-9_-]"
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}

func validateViewportBounds(config *Config) []string {
	vp := config.Viewport
	if vp.MinZoomLevel > 0 && vp.MaxZoomLevel > 0 && vp.MinZoomLevel > vp.MaxZoomLevel {
		return []string{fmt.Sprintf(
			"viewport.min_zoom_level (%v) must not exceed viewport.max_zoom_level (%v)",
			vp.MinZoomLevel, vp.MaxZoomLevel,
		)}
	}
	return nil
}
