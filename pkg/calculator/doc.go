// Package calculator parses a delimiter-separated list of integers and returns
// their sum, or a classified error describing what is wrong with the input.
//
// # Input format
//
// By default numbers are separated by "," or "\n":
//
//	calculator.Add("1,2\n3") // 6, nil
//
// An optional header on the first line declares custom delimiters. Each
// delimiter is wrapped in brackets, may be several characters long and must
// not contain digits:
//
//	calculator.Add("//[;]\n1;2;3")     // 6, nil
//	calculator.Add("//[***]\n1***2")   // 3, nil
//	calculator.Add("//[*][%]\n1*2%3")  // 6, nil
//
// A "//" line that does not match this form is not treated as a header; the
// whole input is then parsed with the regular delimiters.
//
// # Pipeline
//
// Add runs three stages:
//
//  1. ExtractHeader strips the header and yields the delimiter set.
//  2. Tokenize rejects a body that starts or ends with a delimiter and splits
//     it on literal delimiter matches.
//  3. ParseIntegers, RejectNegatives and Sum validate and aggregate the tokens.
//     Values above MaxValue are skipped silently.
//
// # Errors
//
// Every failure is an AddError, one of InvalidNumbersError,
// StartingOrEndingByDelimiterError or NegativeIntegersError. Only one variant
// is reported per call, with this precedence: delimiter position, then
// invalid tokens, then negatives. The two list-carrying variants collect
// every offending element of the input rather than the first one:
//
//	_, err := calculator.Add("-1,2,-3")
//	var neg calculator.NegativeIntegersError
//	if errors.As(err, &neg) {
//		fmt.Println(neg.Values) // [-1 -3]
//	}
//
// Each variant also unwraps to a category sentinel (ErrInvalidNumbers,
// ErrDelimiterPosition, ErrNegativeIntegers) for errors.Is checks.
//
// All functions are pure and safe for concurrent use.
package calculator
