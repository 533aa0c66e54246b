package validator

import "fmt"

func RequiredSlice[T any](field string, value []T) Rule {
	return Rule{
		Check: func() bool {
			return len(value) > 0
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
			Code:    "required",
		},
	}
}

func MaxLenSlice[T any](field string, value []T, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must have at most %d items", max),
			Code:    "max_items",
		},
	}
}

// EachRequired fails when any element of value is the empty string.
func EachRequired(field string, value []string) Rule {
	return Rule{
		Check: func() bool {
			for _, v := range value {
				if v == "" {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: "must not contain empty items",
			Code:    "each_required",
		},
	}
}

// Each applies rule to every element and prefixes the field with the index,
// e.g. "delimiters[2]".
func Each[T any](field string, value []T, rule func(field string, v T) Rule) []Rule {
	rules := make([]Rule, 0, len(value))
	for i, v := range value {
		rules = append(rules, rule(fmt.Sprintf("%s[%d]", field, i), v))
	}
	return rules
}
