// Package validation checks request payloads and normalizes free-form input.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"wayfarer/internal/models"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the only accepted format for calendar dates.
const DateLayout = "2006-01-02"

var (
	validate = newValidator()

	listSeparator = regexp.MustCompile(`,\s*`)
	whitespace    = regexp.MustCompile(`\s+`)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Absent and cleared optional fields are skipped by omitempty.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		o, ok := field.Interface().(models.Optional[string])
		if !ok || !o.Set || o.Value == "" {
			return nil
		}
		return o.Value
	}, models.Optional[string]{})

	if err := v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}

	return v
}

// Struct validates s and returns one FieldError per failed field, in declaration order.
// A nil result means s is valid.
func Struct(s any) []models.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []models.FieldError{{Message: err.Error()}}
	}

	out := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, models.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "min":
		if isString {
			return fmt.Sprintf("%q length must be at least %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%q must be greater than or equal to %s", field, fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("%q length must be less than or equal to %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%q must be less than or equal to %s", field, fe.Param())
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "url":
		return fmt.Sprintf("%q must be a valid uri", field)
	case "oneof":
		return fmt.Sprintf("%q must be one of [%s]", field, fe.Param())
	case "isodate":
		return fmt.Sprintf("%q must be a valid date in YYYY-MM-DD format", field)
	default:
		return fmt.Sprintf("%q is invalid", field)
	}
}

// ParseDate parses a YYYY-MM-DD date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// NormalizeUsername strips all whitespace and lowercases.
func NormalizeUsername(s string) string {
	return strings.ToLower(whitespace.ReplaceAllString(s, ""))
}

// SplitList splits a comma separated string, dropping empty items.
func SplitList(s string, lower bool) []string {
	if lower {
		s = strings.ToLower(s)
	}
	parts := listSeparator.Split(strings.TrimSpace(s), -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
