package calculator

import (
	"regexp"
	"strings"
)

// headerPattern matches "//" followed by one or more bracketed, digit-free
// delimiter groups on a single line, terminated by a newline.
var headerPattern = regexp.MustCompile(`^//((?:\[[^\d\n]+\])+)\n`)

// ExtractHeader strips a custom delimiter header from input.
// When input has no recognizable header it returns input unchanged and ok=false.
//
//	body, delims, ok := ExtractHeader("//[*][%]\n1*2%3")
//	// body == "1*2%3", delims == []string{"*", "%"}, ok == true
func ExtractHeader(input string) (body string, delimiters []string, ok bool) {
	m := headerPattern.FindStringSubmatchIndex(input)
	if m == nil {
		return input, nil, false
	}

	delimiters = splitGroups(input[m[2]:m[3]])
	if len(delimiters) == 0 {
		// Groups made only of brackets, e.g. "//[]]\n".
		return input, nil, false
	}
	return input[m[1]:], delimiters, true
}

// splitGroups turns "[a][bc]" into ["a", "bc"], dropping empty fragments.
func splitGroups(groups string) []string {
	return strings.FieldsFunc(groups, func(r rune) bool {
		return r == '[' || r == ']'
	})
}
