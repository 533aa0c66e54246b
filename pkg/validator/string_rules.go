package validator

import (
	"fmt"
	"strings"
	"unicode"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
			Code:    "required",
		},
	}
}

// MaxLenString limits the byte length of value.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d bytes long", max),
			Code:    "max_length",
		},
	}
}

// NoDigits rejects values containing any decimal digit.
func NoDigits(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.IndexFunc(value, unicode.IsDigit) < 0
		},
		Error: ValidationError{
			Field:   field,
			Message: "must not contain digits",
			Code:    "no_digits",
		},
	}
}
