package calc

import (
	"github.com/dmitrymomot/strcalc/pkg/calculator"
)

// Result is the outcome of one evaluation. Exactly one of Sum (when Failure
// is nil) or Failure is meaningful.
type Result struct {
	Input   string   `json:"input" yaml:"input"`
	Sum     int      `json:"sum" yaml:"sum"`
	Failure *Failure `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failure is a serializable form of calculator.AddError.
type Failure struct {
	Kind             calculator.Kind `json:"kind" yaml:"kind"`
	Message          string          `json:"message" yaml:"message"`
	InvalidNumbers   []string        `json:"invalid_numbers,omitempty" yaml:"invalid_numbers,omitempty"`
	NegativeIntegers []int           `json:"negative_integers,omitempty" yaml:"negative_integers,omitempty"`
}

// OK reports whether the input was accepted.
func (r Result) OK() bool {
	return r.Failure == nil
}

// Err rebuilds the typed calculator error, or returns nil for an accepted input.
func (r Result) Err() error {
	if r.Failure == nil {
		return nil
	}
	switch r.Failure.Kind {
	case calculator.KindInvalidNumbers:
		return calculator.InvalidNumbersError{Values: r.Failure.InvalidNumbers}
	case calculator.KindNegativeIntegers:
		return calculator.NegativeIntegersError{Values: r.Failure.NegativeIntegers}
	default:
		return calculator.ErrStartingOrEndingByDelimiter
	}
}

func newFailure(err calculator.AddError) *Failure {
	f := &Failure{Kind: err.Kind(), Message: err.Error()}
	switch e := err.(type) {
	case calculator.InvalidNumbersError:
		f.InvalidNumbers = e.Values
	case calculator.NegativeIntegersError:
		f.NegativeIntegers = e.Values
	}
	return f
}
