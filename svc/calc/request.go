package calc

import (
	"github.com/dmitrymomot/strcalc/pkg/validator"
)

// MaxDelimiters caps how many delimiters a caller may supply.
const MaxDelimiters = 32

// Request is a single input to evaluate.
type Request struct {
	Numbers    string   `json:"numbers"`
	Delimiters []string `json:"delimiters,omitempty"`
}

// BatchRequest is the body of a batch evaluation.
type BatchRequest struct {
	Items []Request `json:"items"`
}

// Validate checks the request against the input size limit. Caller
// delimiters must be non-empty and digit-free.
func (r Request) Validate(maxInputBytes int) error {
	return validator.Apply(r.rules("", maxInputBytes)...)
}

func (r Request) rules(prefix string, maxInputBytes int) []validator.Rule {
	rules := []validator.Rule{
		validator.MaxLenString(prefix+"numbers", r.Numbers, maxInputBytes),
		validator.MaxLenSlice(prefix+"delimiters", r.Delimiters, MaxDelimiters),
		validator.EachRequired(prefix+"delimiters", r.Delimiters),
	}
	return append(rules, validator.Each(prefix+"delimiters", r.Delimiters, validator.NoDigits)...)
}

// Validate checks the batch size and every item. Item fields are reported as
// "items[i].numbers" and so on.
func (b BatchRequest) Validate(maxBatchSize, maxInputBytes int) error {
	rules := []validator.Rule{
		validator.RequiredSlice("items", b.Items),
		validator.MaxLenSlice("items", b.Items, maxBatchSize),
	}
	if len(b.Items) <= maxBatchSize {
		for i, item := range b.Items {
			rules = append(rules, item.rules(itemPrefix(i), maxInputBytes)...)
		}
	}
	return validator.Apply(rules...)
}
