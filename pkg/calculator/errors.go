package calculator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Category errors. Every AddError unwraps to exactly one of them, so callers
// can branch with errors.Is without caring about the payload.
var (
	ErrInvalidNumbers    = errors.New("invalid numbers")
	ErrDelimiterPosition = errors.New("input starts or ends with a delimiter")
	ErrNegativeIntegers  = errors.New("negative integers are not allowed")
)

// Kind identifies an AddError variant.
type Kind string

const (
	KindInvalidNumbers              Kind = "invalid_numbers"
	KindStartingOrEndingByDelimiter Kind = "starting_or_ending_by_delimiter"
	KindNegativeIntegers            Kind = "negative_integers"
)

// AddError is the closed set of failures Add can report. The unexported
// method keeps the set sealed to the three variants declared in this file.
type AddError interface {
	error
	Kind() Kind
	addError()
}

// InvalidNumbersError lists every token that is not an integer, in input order.
type InvalidNumbersError struct {
	Values []string
}

// Combine appends other's tokens after e's into a new error.
func (e InvalidNumbersError) Combine(other InvalidNumbersError) InvalidNumbersError {
	values := make([]string, 0, len(e.Values)+len(other.Values))
	values = append(values, e.Values...)
	values = append(values, other.Values...)
	return InvalidNumbersError{Values: values}
}

func (e InvalidNumbersError) Error() string {
	quoted := make([]string, len(e.Values))
	for i, v := range e.Values {
		quoted[i] = strconv.Quote(v)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidNumbers, strings.Join(quoted, ", "))
}

func (e InvalidNumbersError) Kind() Kind    { return KindInvalidNumbers }
func (e InvalidNumbersError) Unwrap() error { return ErrInvalidNumbers }
func (InvalidNumbersError) addError()       {}

// StartingOrEndingByDelimiterError reports a body with a leading or trailing delimiter.
type StartingOrEndingByDelimiterError struct{}

// ErrStartingOrEndingByDelimiter is the only value of StartingOrEndingByDelimiterError.
var ErrStartingOrEndingByDelimiter AddError = StartingOrEndingByDelimiterError{}

func (StartingOrEndingByDelimiterError) Error() string { return ErrDelimiterPosition.Error() }
func (StartingOrEndingByDelimiterError) Kind() Kind    { return KindStartingOrEndingByDelimiter }
func (StartingOrEndingByDelimiterError) Unwrap() error { return ErrDelimiterPosition }
func (StartingOrEndingByDelimiterError) addError()     {}

// NegativeIntegersError lists every negative value, in input order, duplicates kept.
type NegativeIntegersError struct {
	Values []int
}

// Combine appends other's values after e's into a new error.
func (e NegativeIntegersError) Combine(other NegativeIntegersError) NegativeIntegersError {
	values := make([]int, 0, len(e.Values)+len(other.Values))
	values = append(values, e.Values...)
	values = append(values, other.Values...)
	return NegativeIntegersError{Values: values}
}

func (e NegativeIntegersError) Error() string {
	parts := make([]string, len(e.Values))
	for i, v := range e.Values {
		parts[i] = strconv.Itoa(v)
	}
	return fmt.Sprintf("%s: %s", ErrNegativeIntegers, strings.Join(parts, ", "))
}

func (e NegativeIntegersError) Kind() Kind    { return KindNegativeIntegers }
func (e NegativeIntegersError) Unwrap() error { return ErrNegativeIntegers }
func (NegativeIntegersError) addError()       {}

// AsAddError extracts the AddError carried by err, if any.
func AsAddError(err error) (AddError, bool) {
	if err == nil {
		return nil, false
	}
	var addErr AddError
	if errors.As(err, &addErr) {
		return addErr, true
	}
	return nil, false
}
