package validator

import "errors"

// ErrValidationFailed is the category every ValidationErrors value unwraps to.
var ErrValidationFailed = errors.New("validation failed")
