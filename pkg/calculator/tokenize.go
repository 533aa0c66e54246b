package calculator

import "strings"

// Tokenize splits body into whitespace-trimmed tokens.
// Delimiters are matched literally; at each position they are tried in order
// and the first match wins. A body that starts or ends with any delimiter is
// rejected with ErrStartingOrEndingByDelimiter before any splitting happens.
// Empty delimiters are ignored. An empty body yields no tokens.
func Tokenize(body string, delimiters []string) ([]string, error) {
	if body == "" {
		return nil, nil
	}

	for _, d := range delimiters {
		if d == "" {
			continue
		}
		if strings.HasPrefix(body, d) || strings.HasSuffix(body, d) {
			return nil, ErrStartingOrEndingByDelimiter
		}
	}

	return splitLiteral(body, delimiters), nil
}

func splitLiteral(s string, delimiters []string) []string {
	var (
		tokens []string
		start  int
	)

	for i := 0; i < len(s); {
		d, found := delimiterAt(s[i:], delimiters)
		if !found {
			i++
			continue
		}
		tokens = append(tokens, strings.TrimSpace(s[start:i]))
		i += len(d)
		start = i
	}

	return append(tokens, strings.TrimSpace(s[start:]))
}

func delimiterAt(s string, delimiters []string) (string, bool) {
	for _, d := range delimiters {
		if d != "" && strings.HasPrefix(s, d) {
			return d, true
		}
	}
	return "", false
}
