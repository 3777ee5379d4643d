package shell

import "strings"

// isDelimiter matches the token separators: space, tab, carriage return,
// newline and bell.
func isDelimiter(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '\a':
		return true
	}
	return false
}

// Tokenize splits a raw input line into argument tokens. Runs of delimiters
// collapse into a single split and no quoting is interpreted.
func Tokenize(line string) []string {
	return strings.FieldsFunc(line, isDelimiter)
}
