// Package validator provides small, composable validation helpers.
//
// Two styles are supported. Rule values pair a boolean Check with an error
// description and are evaluated by Apply, which collects every failure into a
// ValidationErrors slice:
//
//	err := validator.Apply(
//		validator.MaxLenString("numbers", req.Numbers, 1<<16),
//		validator.EachRequired("delimiters", req.Delimiters),
//	)
//
// Traverse covers the other case: converting a list of values while
// accumulating every failure into a single domain error that knows how to
// Combine with others. Nothing short-circuits; callers see the whole picture.
package validator
