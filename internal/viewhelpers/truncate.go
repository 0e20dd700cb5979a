package viewhelpers

import "unicode/utf8"

// Ellipsis is appended to text that Truncate shortened.
const Ellipsis = "..."

// Truncate shortens text to maxLength runes followed by Ellipsis.
//
// A maxLength of 0 means "no limit" and returns text unchanged; an unset
// limit arrives as 0.  A negative maxLength keeps no runes and yields just
// Ellipsis.
func Truncate(text string, maxLength int) string {
	if text == "" {
		return ""
	}
	if maxLength == 0 {
		return text
	}
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}
	return prefix(text, maxLength) + Ellipsis
}

// prefix returns the first n runes of s; n <= 0 yields "".
func prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for j := range s {
		if i == n {
			return s[:j]
		}
		i++
	}
	return s
}
