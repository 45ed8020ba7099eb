package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidPayload = errors.New("invalid payload")

// FieldErrors maps a JSON field name to the rule it failed: required, min,
// max, email, oneof or invalid.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field, rule := range e {
		fields = append(fields, field+": "+rule)
	}
	sort.Strings(fields)
	return "invalid fields: " + strings.Join(fields, ", ")
}

var (
	validate    = newValidator()
	colorFormat = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("rrggbb", func(fl validator.FieldLevel) bool {
		return colorFormat.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Struct runs the validate tags of req and reports failures per field.
func Struct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fields := FieldErrors{}
	for _, fieldErr := range validationErrors {
		fields[fieldName(fieldErr)] = rule(fieldErr.Tag())
	}
	return fields
}

// fieldName strips the struct prefix so nested fields read members[0].
func fieldName(fieldErr validator.FieldError) string {
	namespace := fieldErr.Namespace()
	if _, rest, found := strings.Cut(namespace, "."); found {
		return rest
	}
	return fieldErr.Field()
}

func rule(tag string) string {
	switch tag {
	case "required", "min", "max", "email", "oneof":
		return tag
	}
	return "invalid"
}

func required(field string) FieldErrors {
	return FieldErrors{field: "required"}
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func hasAnyField(raw map[string]json.RawMessage, fields ...string) bool {
	for _, field := range fields {
		if hasJSONField(raw, field) {
			return true
		}
	}
	return false
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

// rejectNulls fails when a non-nullable field is explicitly null.
func rejectNulls(raw map[string]json.RawMessage, fields ...string) error {
	for _, field := range fields {
		if value, ok := raw[field]; ok && isJSONNull(value) {
			return required(field)
		}
	}
	return nil
}
