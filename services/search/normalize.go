package search

import (
	"strings"
	"unicode"
)

// Normalize trims the raw query, collapses internal whitespace runs to single
// spaces, and title-cases the result: the first character and every character
// following a space is upper-cased, everything else lower-cased. The transform
// is pure and idempotent. An EmptyQueryError is returned when nothing remains
// after trimming.
func Normalize(raw string) (string, error) {
	collapsed := strings.Join(strings.Fields(raw), " ")
	if collapsed == "" {
		return "", &EmptyQueryError{}
	}

	var b strings.Builder
	b.Grow(len(collapsed))
	startOfWord := true
	for _, r := range collapsed {
		if startOfWord {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		startOfWord = r == ' '
	}
	return b.String(), nil
}
