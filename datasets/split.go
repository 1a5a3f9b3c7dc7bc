package datasets

import "strings"

// Split cuts a line on every single space. Consecutive spaces produce empty
// tokens, except at the end of the line where empty tokens are dropped. A
// line without any space is its own only token, even when empty.
func Split(line string) []string {
	if !strings.Contains(line, " ") {
		return []string{line}
	}
	tokens := strings.Split(line, " ")
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}
