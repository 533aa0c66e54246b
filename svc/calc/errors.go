package calc

import "errors"

var (
	// ErrUnexpectedFailure is returned when the calculator fails with an error
	// outside its documented set.
	ErrUnexpectedFailure = errors.New("calc: unexpected calculator failure")
	// ErrInvalidConfig is returned by New for non-positive limits.
	ErrInvalidConfig = errors.New("calc: invalid config")
)
