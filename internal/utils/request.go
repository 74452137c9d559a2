package utils

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/gorilla/schema"
)

var (
	queryDecoder = newDecoder("schema")
	formDecoder  = newDecoder("json")
)

func newDecoder(tag string) *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.SetAliasTag(tag)
	decoder.IgnoreUnknownKeys(true)

	return decoder
}

// DecodeQuery fills dest from query-string values. Values that fail to
// convert are left at their zero value so callers fall back to defaults.
func DecodeQuery(values url.Values, dest any) error {
	err := queryDecoder.Decode(dest, values)
	if err == nil {
		return nil
	}

	var multi schema.MultiError
	if !errors.As(err, &multi) {
		return fmt.Errorf("decoding query: %w", err)
	}

	for key, fieldErr := range multi {
		var conversionErr schema.ConversionError
		if !errors.As(fieldErr, &conversionErr) {
			return fmt.Errorf("decoding query: %w", err)
		}

		slog.Debug("Ignoring malformed query parameter", slog.String("param", key), slog.String("error", fieldErr.Error()))
	}

	return nil
}

// FormFieldError names the form field whose value could not be converted.
type FormFieldError struct {
	Field string
	Err   error
}

func (e *FormFieldError) Error() string {
	return fmt.Sprintf("invalid value for %s: %v", e.Field, e.Err)
}

func (e *FormFieldError) Unwrap() error {
	return e.Err
}

// DecodeForm fills dest from multipart or urlencoded form values using the
// json field names.
func DecodeForm(values url.Values, dest any) error {
	err := formDecoder.Decode(dest, values)
	if err == nil {
		return nil
	}

	var multi schema.MultiError
	if errors.As(err, &multi) {
		for key, fieldErr := range multi {
			return &FormFieldError{Field: key, Err: fieldErr}
		}
	}

	return fmt.Errorf("decoding form: %w", err)
}
