package calculator

import (
	"strconv"

	"github.com/dmitrymomot/strcalc/pkg/validator"
)

// MaxValue is the largest value that contributes to a sum. Larger values are
// dropped without an error.
const MaxValue = 1000

// ParseIntegers converts every token to an int. If any token fails, the
// result is an InvalidNumbersError listing all failing tokens in order.
func ParseIntegers(tokens []string) ([]int, error) {
	values, failure, ok := validator.Traverse(tokens, parseToken)
	if !ok {
		return nil, failure
	}
	return values, nil
}

func parseToken(token string) (int, InvalidNumbersError, bool) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, InvalidNumbersError{Values: []string{token}}, false
	}
	return n, InvalidNumbersError{}, true
}

// RejectNegatives returns a NegativeIntegersError with every negative value,
// or nil when there are none.
func RejectNegatives(values []int) error {
	if _, failure, ok := validator.Traverse(values, nonNegative); !ok {
		return failure
	}
	return nil
}

func nonNegative(v int) (int, NegativeIntegersError, bool) {
	if v < 0 {
		return 0, NegativeIntegersError{Values: []int{v}}, false
	}
	return v, NegativeIntegersError{}, true
}

// Sum adds up the values not greater than MaxValue.
func Sum(values []int) int {
	total := 0
	for _, v := range values {
		if v <= MaxValue {
			total += v
		}
	}
	return total
}
