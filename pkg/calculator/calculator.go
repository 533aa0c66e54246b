package calculator

// DefaultDelimiters is used when neither the caller nor a header supplies delimiters.
var DefaultDelimiters = []string{",", "\n"}

// Add sums the numbers in input.
//
// Input may start with a header that declares its own delimiters, e.g.
// "//[***][%]\n1***2%3". Otherwise the given delimiters are used, or
// DefaultDelimiters when none are given. Values above MaxValue are ignored.
//
// A non-nil error is always an AddError, checked in this order:
//   - StartingOrEndingByDelimiterError when the body begins or ends with a delimiter;
//   - InvalidNumbersError with every token that is not an integer;
//   - NegativeIntegersError with every negative value.
func Add(input string, delimiters ...string) (int, error) {
	body, custom, ok := ExtractHeader(input)
	if ok {
		delimiters = custom
	} else {
		delimiters = normalize(delimiters)
	}

	tokens, err := Tokenize(body, delimiters)
	if err != nil {
		return 0, err
	}
	if len(tokens) == 0 {
		return 0, nil
	}

	values, err := ParseIntegers(tokens)
	if err != nil {
		return 0, err
	}
	if err := RejectNegatives(values); err != nil {
		return 0, err
	}

	return Sum(values), nil
}

// normalize drops empty delimiters and falls back to DefaultDelimiters.
func normalize(delimiters []string) []string {
	out := make([]string, 0, len(delimiters))
	for _, d := range delimiters {
		if d != "" {
			out = append(out, d)
		}
	}
	if len(out) == 0 {
		return DefaultDelimiters
	}
	return out
}
