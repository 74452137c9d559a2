package validation

import (
	"context"
	"fmt"
	"html"
	"reflect"
	"strings"

	"github.com/Chimelu/hafak-surgicals-backend/internal/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/mold/v4"
	"github.com/go-playground/mold/v4/modifiers"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

// Validator cleans, defaults and validates request payloads. Violations are
// reported as a single AppError whose Fields map json field names to messages.
type Validator struct {
	conform  *mold.Transformer
	validate *validator.Validate
	policy   *bluemonday.Policy
}

func New() *Validator {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v := &Validator{
		conform:  modifiers.New(),
		validate: validate,
		policy:   bluemonday.StrictPolicy(),
	}

	v.conform.Register("strip_html", v.stripHTML)

	return v
}

// Struct trims and normalizes dest in place, then validates it.
func (v *Validator) Struct(ctx context.Context, dest any) error {
	if err := v.conform.Struct(ctx, dest); err != nil {
		return errors.InternalError("Failed to normalize request").WithError(err)
	}

	if err := v.validate.Struct(dest); err != nil {
		validationErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return errors.InternalError("Unexpected validation error").WithError(err)
		}

		return errors.ValidationError("Validation failed").WithFields(FieldMessages(validationErrs)).WithError(err)
	}

	return nil
}

// ApplyDefaults fills zero-valued fields from their `default` tags.
func (v *Validator) ApplyDefaults(dest any) error {
	if err := defaults.Set(dest); err != nil {
		return errors.InternalError("Failed to apply defaults").WithError(err)
	}

	return nil
}

// StripHTML removes any markup from free text and returns plain text.
func (v *Validator) StripHTML(s string) string {
	return html.UnescapeString(v.policy.Sanitize(s))
}

func (v *Validator) stripHTML(_ context.Context, fl mold.FieldLevel) error {
	field := fl.Field()
	if field.Kind() != reflect.String || !field.CanSet() {
		return nil
	}

	field.SetString(v.StripHTML(field.String()))

	return nil
}

func FieldMessages(errs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(errs))

	for _, err := range errs {
		fields[err.Field()] = message(err)
	}

	return fields
}

func message(err validator.FieldError) string {
	field := err.Field()
	isText := err.Kind() == reflect.String

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max", "lte":
		if isText {
			return fmt.Sprintf("%s cannot exceed %s characters", field, err.Param())
		}
		return fmt.Sprintf("%s cannot exceed %s", field, err.Param())
	case "min":
		if isText {
			return fmt.Sprintf("%s must be at least %s characters", field, err.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, err.Param())
	case "gte":
		if err.Param() == "0" {
			return fmt.Sprintf("%s cannot be negative", field)
		}
		return fmt.Sprintf("%s must be at least %s", field, err.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, err.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a valid identifier", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
