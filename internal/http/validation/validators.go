// Package validation reads submitted forms into typed values and collects per-field
// messages for inputs that cannot be read. Business rules belong to the model's
// Validate methods; this package only rejects what cannot be parsed at all.
package validation

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Validator is a function that validates a string value and returns an error message if invalid.
type Validator func(v string) string

// MaxLen rejects values longer than maxLen characters. Empty values pass.
func MaxLen(fieldName string, maxLen int) Validator {
	return func(v string) string {
		if utf8.RuneCountInString(strings.TrimSpace(v)) > maxLen {
			return fmt.Sprintf("%s cannot exceed %d characters.", fieldName, maxLen)
		}
		return ""
	}
}

// Pattern validates that a non-empty field matches re.
func Pattern(fieldName string, re *regexp.Regexp) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		if !re.MatchString(v) {
			return fieldName + " has an invalid format."
		}
		return ""
	}
}

// Number validates that a non-empty field is a finite decimal number.
func Number(fieldName string) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return fieldName + " must be a number."
		}
		return ""
	}
}

// Required rejects blank values with message.
func Required(message string) Validator {
	return func(v string) string {
		if strings.TrimSpace(v) == "" {
			return message
		}
		return ""
	}
}

// WholeNumber validates that a non-empty field is an integer.
func WholeNumber(fieldName string) Validator {
	return func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return ""
		}
		if _, err := strconv.Atoi(v); err != nil {
			return fieldName + " must be a whole number."
		}
		return ""
	}
}

// HexColor matches #rgb and #rrggbb.
var HexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}){1,2}$`)

// RGBTriplet matches "r, g, b" and "rgb(r, g, b)" with components 0-255.
var RGBTriplet = regexp.MustCompile(`^(?:rgb\()?\s*(?:25[0-5]|2[0-4]\d|1?\d?\d)\s*,\s*(?:25[0-5]|2[0-4]\d|1?\d?\d)\s*,\s*(?:25[0-5]|2[0-4]\d|1?\d?\d)\s*\)?$`)

// FieldValidator provides a fluent API for validating multiple fields.
type FieldValidator struct {
	errors map[string]string
}

// New creates a new FieldValidator instance.
func New() *FieldValidator {
	return &FieldValidator{errors: make(map[string]string)}
}

// Validate runs validators against value, keeping only the first message per field.
func (fv *FieldValidator) Validate(field, value string, validators ...Validator) *FieldValidator {
	if _, seen := fv.errors[field]; seen {
		return fv
	}
	for _, v := range validators {
		if msg := v(value); msg != "" {
			fv.errors[field] = msg
			break
		}
	}
	return fv
}

// Merge adds messages from errs for fields that have none yet.
func (fv *FieldValidator) Merge(errs map[string]string) *FieldValidator {
	for k, v := range errs {
		if _, seen := fv.errors[k]; !seen {
			fv.errors[k] = v
		}
	}
	return fv
}

// Errors returns the accumulated validation errors.
func (fv *FieldValidator) Errors() map[string]string {
	return fv.errors
}
