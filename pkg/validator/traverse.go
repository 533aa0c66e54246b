package validator

// Combiner is implemented by failure values that can be merged into one.
// Combine must be associative: a.Combine(b).Combine(c) equals a.Combine(b.Combine(c)).
type Combiner[E any] interface {
	Combine(other E) E
}

// Traverse runs check against every value and never stops at the first
// failure. When all checks pass it returns the converted values in input
// order and ok=true. Otherwise it returns every failure combined left to
// right and ok=false; converted values are discarded in that case.
// check returns the converted value and true on success, or a failure and
// false otherwise.
//
// Example:
//
//	ints, failure, ok := validator.Traverse(tokens, func(s string) (int, BadTokens, bool) {
//		n, err := strconv.Atoi(s)
//		if err != nil {
//			return 0, BadTokens{s}, false
//		}
//		return n, nil, true
//	})
func Traverse[T, R any, E Combiner[E]](values []T, check func(T) (R, E, bool)) ([]R, E, bool) {
	var (
		failure E
		failed  bool
	)

	results := make([]R, 0, len(values))
	for _, v := range values {
		r, e, ok := check(v)
		if ok {
			if !failed {
				results = append(results, r)
			}
			continue
		}

		if failed {
			failure = failure.Combine(e)
		} else {
			failure = e
			failed = true
		}
	}

	if failed {
		return nil, failure, false
	}
	return results, failure, true
}
