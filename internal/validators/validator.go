// SPDX-License-Identifier: Apache-2.0

// Package validators implements the gateway's schema validation layer.
//
// Request payloads are validated with go-playground/validator struct tags
// plus a small set of registered custom rules before any downstream call is
// made. Validation is pure: it performs no I/O and touches no shared state.
package validators

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/abcall/user-management-gateway/models"
)

var (
	// personNamePattern restricts person names to Latin letters, the
	// Spanish accented letters and spaces. No digits, no punctuation.
	personNamePattern = regexp.MustCompile(`^[a-zA-ZáéíóúñÁÉÍÓÚÑ\s]+$`)

	// phonePattern is the exact international phone format
	// "+DD DDD DDD DDDD": plus sign, 2 digits, then 3-3-4 digit groups
	// separated by single spaces.
	phonePattern = regexp.MustCompile(`^\+\d{2} \d{3} \d{3} \d{4}$`)
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report violations under the JSON field names the caller sent.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations(validate)
}

// FieldError describes a single violated field rule.
type FieldError struct {
	// Field is the JSON name of the offending field.
	Field string `json:"field"`

	// Reason is a human-readable description of the violated rule.
	Reason string `json:"reason"`
}

// Validate checks s against its struct tags and returns one FieldError per
// violated rule, or nil when the value is valid.
func Validate(s any) []FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Reason: err.Error()}}
	}

	fieldErrs := make([]FieldError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fieldErrs = append(fieldErrs, FieldError{
			Field:  fieldErr.Field(),
			Reason: reason(fieldErr),
		})
	}

	return fieldErrs
}

// ValidUUID reports whether s is a canonical textual UUID
// (8-4-4-4-12 dashed hex groups). Used to guard UUID path segments before
// a downstream call is attempted.
func ValidUUID(s string) bool {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return false
	}

	// uuid.Parse also accepts urn-prefixed, braced, undashed and
	// uppercase forms; only the canonical lowercase dashed form is
	// allowed in paths.
	return parsed.String() == s
}

func registerCustomValidations(v *validator.Validate) {
	_ = v.RegisterValidation("person_name", func(fl validator.FieldLevel) bool {
		return personNamePattern.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("phone_intl", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("not_future", func(fl validator.FieldLevel) bool {
		date, ok := fl.Field().Interface().(models.Date)
		if !ok {
			return false
		}
		if date.IsZero() {
			return false
		}
		// Today is allowed; only strictly future dates fail.
		return !date.After(models.Today())
	})
}

// reason renders a violated rule as a stable human-readable message.
func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	case "person_name":
		return "must contain only letters and spaces"
	case "phone_intl":
		return "must match the format +DD DDD DDD DDDD"
	case "not_future":
		return "the birth date cannot be in the future"
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
